package ui

import (
	"fmt"
	"html/template"
	"io"
	"strings"
	"time"

	"github.com/me/agrirent/pkg/model"
)

// Template functions available in all templates.
var templateFuncs = template.FuncMap{
	"formatTime": func(t time.Time) string {
		if t.IsZero() {
			return "-"
		}
		return t.Format("2006-01-02 15:04:05")
	},
	"auditTime": func(l model.AuditLog) string {
		if l.ReadableTime != "" {
			return l.ReadableTime
		}
		return l.Time().Format("2006-01-02 15:04:05")
	},
	"money": func(v float64) string {
		return fmt.Sprintf("₹%.2f", v)
	},
	"statusColor": func(status model.RentalStatus) string {
		switch status {
		case model.RentalStatusRented:
			return "bg-yellow-100 text-yellow-800"
		case model.RentalStatusReturned:
			return "bg-green-100 text-green-800"
		default:
			return "bg-gray-100 text-gray-800"
		}
	},
	"navClass": func(current, item string) string {
		if current == item {
			return "border-green-600 text-gray-900"
		}
		return "border-transparent text-gray-500 hover:border-gray-300 hover:text-gray-700"
	},
	"title": func(s string) string {
		if s == "" {
			return s
		}
		return strings.ToUpper(s[:1]) + s[1:]
	},
}

// renderTemplate renders a page inside the layout.
func renderTemplate(w io.Writer, name string, data map[string]any) error {
	content, ok := templates[name]
	if !ok {
		return fmt.Errorf("template not found: %s", name)
	}

	tmpl, err := template.New("layout").Funcs(templateFuncs).Parse(templates["layout"])
	if err != nil {
		return fmt.Errorf("parse layout: %w", err)
	}
	if _, err := tmpl.New("content").Parse(content); err != nil {
		return fmt.Errorf("parse content: %w", err)
	}
	for compName, compContent := range templates {
		if strings.HasPrefix(compName, "components/") {
			if _, err := tmpl.New(strings.TrimPrefix(compName, "components/")).Parse(compContent); err != nil {
				return fmt.Errorf("parse component %s: %w", compName, err)
			}
		}
	}

	return tmpl.Execute(w, data)
}

var templates = map[string]string{
	"layout": `<!DOCTYPE html>
<html lang="en">
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
    <title>{{.Title}}</title>
    <script src="https://cdn.tailwindcss.com"></script>
</head>
<body class="bg-gray-50 min-h-screen">
    {{if .Session.IsAuthenticated}}
    <nav class="bg-white shadow-sm border-b">
        <div class="max-w-7xl mx-auto px-4 sm:px-6 lg:px-8">
            <div class="flex justify-between h-16">
                <div class="flex">
                    <a href="{{.Session.Role.Home}}" class="flex items-center px-2 py-2 text-xl font-bold text-green-700">AgriRent Pro</a>
                    <div class="hidden sm:ml-6 sm:flex sm:space-x-8">
                        {{range .Nav}}
                        <a href="{{.Path}}" class="{{navClass $.Path .Path}} inline-flex items-center px-1 pt-1 border-b-2 text-sm font-medium">{{.Label}}</a>
                        {{end}}
                    </div>
                </div>
                <div class="flex items-center">
                    <span class="text-sm text-gray-500 mr-4">{{.Session.User.DisplayName}} ({{.Session.Role}})</span>
                    <form action="/logout" method="POST">
                        <button type="submit" class="text-sm text-gray-500 hover:text-gray-700">Logout</button>
                    </form>
                </div>
            </div>
        </div>
    </nav>
    {{end}}

    <main class="max-w-7xl mx-auto py-6 sm:px-6 lg:px-8">
        {{template "flash" .}}
        {{template "content" .}}
    </main>
</body>
</html>`,

	"components/flash": `{{define "flash"}}{{with .Flash}}
<div class="mb-4 rounded-md p-4 {{if eq .Kind "error"}}bg-red-50 text-red-700{{else}}bg-green-50 text-green-700{{end}}">
    <div class="text-sm">{{.Message}}</div>
</div>
{{end}}{{end}}`,

	"login": `{{define "content"}}
<div class="flex items-center justify-center py-12 px-4">
    <div class="max-w-md w-full space-y-8">
        <div>
            <h2 class="mt-6 text-center text-3xl font-extrabold text-gray-900">AgriRent Pro</h2>
            <p class="mt-2 text-center text-sm text-gray-600">Farming Equipment Management</p>
        </div>
        {{if .Error}}
        <div class="rounded-md bg-red-50 p-4"><div class="text-sm text-red-700">{{.Error}}</div></div>
        {{end}}
        <form class="mt-8 space-y-6" action="/login" method="POST">
            <div class="space-y-2">
                <label for="username" class="block text-sm font-medium text-gray-700">Username</label>
                <input id="username" name="username" type="text" required placeholder="Enter your username"
                       class="block w-full px-3 py-2 border border-gray-300 rounded-md sm:text-sm">
                <label for="password" class="block text-sm font-medium text-gray-700">Password</label>
                <input id="password" name="password" type="password" required placeholder="Enter your password"
                       class="block w-full px-3 py-2 border border-gray-300 rounded-md sm:text-sm">
            </div>
            <button type="submit" class="w-full py-2 px-4 text-sm font-medium rounded-md text-white bg-green-700 hover:bg-green-800">Sign in</button>
        </form>
        <p class="text-center text-sm text-gray-600">No account? <a href="/register" class="text-green-700">Register</a></p>
    </div>
</div>
{{end}}`,

	"register": `{{define "content"}}
<div class="flex items-center justify-center py-12 px-4">
    <div class="max-w-md w-full space-y-8">
        <h2 class="mt-6 text-center text-3xl font-extrabold text-gray-900">Create an account</h2>
        {{if .Error}}
        <div class="rounded-md bg-red-50 p-4"><div class="text-sm text-red-700">{{.Error}}</div></div>
        {{end}}
        <form class="mt-8 space-y-2" action="/register" method="POST">
            <label for="name" class="block text-sm font-medium text-gray-700">Full name</label>
            <input id="name" name="name" type="text" required class="block w-full px-3 py-2 border border-gray-300 rounded-md sm:text-sm">
            <label for="username" class="block text-sm font-medium text-gray-700">Username</label>
            <input id="username" name="username" type="text" required class="block w-full px-3 py-2 border border-gray-300 rounded-md sm:text-sm">
            <label for="password" class="block text-sm font-medium text-gray-700">Password</label>
            <input id="password" name="password" type="password" required class="block w-full px-3 py-2 border border-gray-300 rounded-md sm:text-sm">
            <label for="confirm_password" class="block text-sm font-medium text-gray-700">Confirm password</label>
            <input id="confirm_password" name="confirm_password" type="password" required class="block w-full px-3 py-2 border border-gray-300 rounded-md sm:text-sm">
            <label for="role" class="block text-sm font-medium text-gray-700">Account type</label>
            <select id="role" name="role" class="block w-full px-3 py-2 border border-gray-300 rounded-md sm:text-sm">
                <option value="customer">Customer</option>
                <option value="admin">Admin</option>
            </select>
            <button type="submit" class="mt-4 w-full py-2 px-4 text-sm font-medium rounded-md text-white bg-green-700 hover:bg-green-800">Register</button>
        </form>
        <p class="text-center text-sm text-gray-600">Already registered? <a href="/login" class="text-green-700">Sign in</a></p>
    </div>
</div>
{{end}}`,

	"error": `{{define "content"}}
<div class="flex items-center justify-center py-24">
    <div class="text-center">
        <h1 class="text-4xl font-bold text-gray-900 mb-4">{{if eq .Title "Not Found - AgriRent"}}Not Found{{else}}Error{{end}}</h1>
        <p class="text-gray-600 mb-8">{{.Message}}</p>
        <a href="/" class="text-green-700 hover:text-green-600">Return to Dashboard</a>
        {{if .RequestID}}<p class="mt-4 text-xs text-gray-400">Request {{.RequestID}}</p>{{end}}
    </div>
</div>
{{end}}`,

	"admin/overview": `{{define "content"}}
<div class="px-4 py-6 sm:px-0">
    <h1 class="text-2xl font-semibold text-gray-900 mb-1">Overview</h1>
    <p class="mb-8 text-sm text-gray-500">Welcome back, {{.Session.User.DisplayName}}</p>
    <dl class="grid grid-cols-1 gap-5 sm:grid-cols-2 lg:grid-cols-5">
        <div class="bg-white shadow rounded-lg px-4 py-5"><dt class="text-sm text-gray-500">Equipment</dt><dd class="text-3xl font-semibold">{{.Stats.TotalEquipment}}</dd></div>
        <div class="bg-white shadow rounded-lg px-4 py-5"><dt class="text-sm text-gray-500">Customers</dt><dd class="text-3xl font-semibold">{{.Stats.TotalCustomers}}</dd></div>
        <div class="bg-white shadow rounded-lg px-4 py-5"><dt class="text-sm text-gray-500">Total Rentals</dt><dd class="text-3xl font-semibold">{{.Stats.TotalRentals}}</dd></div>
        <div class="bg-white shadow rounded-lg px-4 py-5"><dt class="text-sm text-gray-500">Active Rentals</dt><dd class="text-3xl font-semibold">{{.Stats.ActiveRentals}}</dd></div>
        <div class="bg-white shadow rounded-lg px-4 py-5"><dt class="text-sm text-gray-500">Revenue</dt><dd class="text-3xl font-semibold">{{money .Stats.TotalRevenue}}</dd></div>
    </dl>
</div>
{{end}}`,

	"admin/equipment": `{{define "content"}}
<div class="px-4 py-6 sm:px-0">
    <h1 class="text-2xl font-semibold text-gray-900 mb-6">Equipment</h1>
    <form action="/admin/equipment" method="POST" class="mb-6 flex space-x-2">
        <input name="name" type="text" required placeholder="Name" class="px-3 py-2 border border-gray-300 rounded-md sm:text-sm">
        <input name="price" type="number" step="0.01" min="0" required placeholder="Price per day" class="px-3 py-2 border border-gray-300 rounded-md sm:text-sm">
        <button type="submit" class="px-4 py-2 text-sm rounded-md text-white bg-green-700">Add Equipment</button>
    </form>
    <table class="min-w-full divide-y divide-gray-200 bg-white shadow rounded-lg">
        <thead><tr>
            <th class="px-6 py-3 text-left text-xs font-medium text-gray-500 uppercase">ID</th>
            <th class="px-6 py-3 text-left text-xs font-medium text-gray-500 uppercase">Name</th>
            <th class="px-6 py-3 text-left text-xs font-medium text-gray-500 uppercase">Price/Day</th>
            <th class="px-6 py-3 text-left text-xs font-medium text-gray-500 uppercase">Status</th>
            <th class="px-6 py-3"></th>
        </tr></thead>
        <tbody class="divide-y divide-gray-200">
        {{range .Equipment}}
            <tr>
                <td class="px-6 py-4 text-sm">{{.ID}}</td>
                <td class="px-6 py-4 text-sm">{{.Name}}</td>
                <td class="px-6 py-4 text-sm">{{money .Price}}</td>
                <td class="px-6 py-4 text-sm">{{if .IsActive}}Active{{else}}Inactive{{end}}</td>
                <td class="px-6 py-4 text-sm text-right">
                    {{if .IsActive}}
                    <form action="/admin/equipment/{{.ID}}/deactivate" method="POST"><button class="text-red-600">Deactivate</button></form>
                    {{else}}
                    <form action="/admin/equipment/{{.ID}}/activate" method="POST"><button class="text-green-700">Activate</button></form>
                    {{end}}
                </td>
            </tr>
        {{else}}
            <tr><td colspan="5" class="px-6 py-4 text-sm text-gray-500 text-center">No equipment yet</td></tr>
        {{end}}
        </tbody>
    </table>
</div>
{{end}}`,

	"admin/rentals": `{{define "content"}}
<div class="px-4 py-6 sm:px-0">
    <h1 class="text-2xl font-semibold text-gray-900 mb-6">Rentals</h1>
    {{template "statusFilter" .}}
    <table class="min-w-full divide-y divide-gray-200 bg-white shadow rounded-lg">
        <thead><tr>
            <th class="px-6 py-3 text-left text-xs font-medium text-gray-500 uppercase">ID</th>
            <th class="px-6 py-3 text-left text-xs font-medium text-gray-500 uppercase">Customer</th>
            <th class="px-6 py-3 text-left text-xs font-medium text-gray-500 uppercase">Equipment</th>
            <th class="px-6 py-3 text-left text-xs font-medium text-gray-500 uppercase">Days</th>
            <th class="px-6 py-3 text-left text-xs font-medium text-gray-500 uppercase">Total</th>
            <th class="px-6 py-3 text-left text-xs font-medium text-gray-500 uppercase">Status</th>
            <th class="px-6 py-3"></th>
        </tr></thead>
        <tbody class="divide-y divide-gray-200">
        {{range .Rentals}}
            <tr>
                <td class="px-6 py-4 text-sm">{{.ID}}</td>
                <td class="px-6 py-4 text-sm">{{.Username}}</td>
                <td class="px-6 py-4 text-sm">{{.EquipmentName}}</td>
                <td class="px-6 py-4 text-sm">{{.Days}}</td>
                <td class="px-6 py-4 text-sm">{{money .Total}}</td>
                <td class="px-6 py-4 text-sm"><span class="px-2 rounded-full {{statusColor .Status}}">{{title (print .Status)}}</span></td>
                <td class="px-6 py-4 text-sm text-right">
                    {{if not .Status.IsTerminal}}
                    <form action="/admin/rentals/{{.ID}}/return" method="POST"><button class="text-green-700">Mark returned</button></form>
                    {{end}}
                </td>
            </tr>
        {{else}}
            <tr><td colspan="7" class="px-6 py-4 text-sm text-gray-500 text-center">No rentals found</td></tr>
        {{end}}
        </tbody>
    </table>
</div>
{{end}}`,

	"components/statusFilter": `{{define "statusFilter"}}
<div class="mb-4 space-x-4 text-sm">
    <a href="{{.Path}}" class="{{if eq .Status ""}}font-semibold text-green-700{{else}}text-gray-500{{end}}">All</a>
    <a href="{{.Path}}?status=rented" class="{{if eq .Status "rented"}}font-semibold text-green-700{{else}}text-gray-500{{end}}">Rented</a>
    <a href="{{.Path}}?status=returned" class="{{if eq .Status "returned"}}font-semibold text-green-700{{else}}text-gray-500{{end}}">Returned</a>
</div>
{{end}}`,

	"admin/reports": `{{define "content"}}
<div class="px-4 py-6 sm:px-0">
    <h1 class="text-2xl font-semibold text-gray-900 mb-6">Revenue Report</h1>
    <table class="min-w-full divide-y divide-gray-200 bg-white shadow rounded-lg">
        <thead><tr>
            <th class="px-6 py-3 text-left text-xs font-medium text-gray-500 uppercase">Equipment</th>
            <th class="px-6 py-3 text-left text-xs font-medium text-gray-500 uppercase">Rentals</th>
            <th class="px-6 py-3 text-left text-xs font-medium text-gray-500 uppercase">Revenue</th>
        </tr></thead>
        <tbody class="divide-y divide-gray-200">
        {{range .Rows}}
            <tr>
                <td class="px-6 py-4 text-sm">{{.Name}}</td>
                <td class="px-6 py-4 text-sm">{{.RentalCount}}</td>
                <td class="px-6 py-4 text-sm">{{money .Revenue}}</td>
            </tr>
        {{else}}
            <tr><td colspan="3" class="px-6 py-4 text-sm text-gray-500 text-center">No revenue recorded</td></tr>
        {{end}}
        </tbody>
        <tfoot><tr>
            <td class="px-6 py-4 text-sm font-semibold">Total</td><td></td>
            <td class="px-6 py-4 text-sm font-semibold">{{money .Total}}</td>
        </tr></tfoot>
    </table>
</div>
{{end}}`,

	"admin/audit": `{{define "content"}}
<div class="px-4 py-6 sm:px-0">
    <h1 class="text-2xl font-semibold text-gray-900 mb-6">Audit Logs</h1>
    <ul class="bg-white shadow rounded-lg divide-y divide-gray-200">
    {{range .Logs}}
        <li class="px-4 py-3 text-sm flex justify-between">
            <span><span class="font-medium">{{.Username}}</span> {{.Action}}</span>
            <span class="text-gray-500">{{auditTime .}}</span>
        </li>
    {{else}}
        <li class="px-4 py-4 text-sm text-gray-500 text-center">No audit entries</li>
    {{end}}
    </ul>
</div>
{{end}}`,

	"customer/overview": `{{define "content"}}
<div class="px-4 py-6 sm:px-0">
    <h1 class="text-2xl font-semibold text-gray-900 mb-1">Overview</h1>
    <p class="mb-8 text-sm text-gray-500">Welcome back, {{.Session.User.DisplayName}}</p>
    <dl class="grid grid-cols-1 gap-5 sm:grid-cols-3 mb-8">
        <div class="bg-white shadow rounded-lg px-4 py-5"><dt class="text-sm text-gray-500">Total Rentals</dt><dd class="text-3xl font-semibold">{{.Stats.TotalRentals}}</dd></div>
        <div class="bg-white shadow rounded-lg px-4 py-5"><dt class="text-sm text-gray-500">Active Rentals</dt><dd class="text-3xl font-semibold">{{.Stats.ActiveRentals}}</dd></div>
        <div class="bg-white shadow rounded-lg px-4 py-5"><dt class="text-sm text-gray-500">Total Spent</dt><dd class="text-3xl font-semibold">{{money .Stats.TotalSpent}}</dd></div>
    </dl>
    <h2 class="text-lg font-medium text-gray-900 mb-2">Recent Rentals</h2>
    <ul class="bg-white shadow rounded-lg divide-y divide-gray-200">
    {{range .Rentals}}
        <li class="px-4 py-3 text-sm flex justify-between">
            <span>{{.EquipmentName}} for {{.Days}} days</span>
            <span class="px-2 rounded-full {{statusColor .Status}}">{{title (print .Status)}}</span>
        </li>
    {{else}}
        <li class="px-4 py-4 text-sm text-gray-500 text-center">No rentals yet. <a href="/customer/browse" class="text-green-700">Browse equipment</a></li>
    {{end}}
    </ul>
</div>
{{end}}`,

	"customer/browse": `{{define "content"}}
<div class="px-4 py-6 sm:px-0">
    <h1 class="text-2xl font-semibold text-gray-900 mb-6">Browse Equipment</h1>
    <form action="/customer/browse" method="GET" class="mb-6">
        <input name="q" type="search" value="{{.Query}}" placeholder="Search equipment" class="px-3 py-2 border border-gray-300 rounded-md sm:text-sm">
    </form>
    <div class="grid grid-cols-1 gap-5 sm:grid-cols-2 lg:grid-cols-3">
    {{range .Equipment}}
        <div class="bg-white shadow rounded-lg p-4">
            <h3 class="text-lg font-medium">{{.Name}}</h3>
            <p class="text-sm text-gray-500 mb-4">{{money .Price}} / day</p>
            <form action="/customer/browse/rent" method="POST" class="flex space-x-2">
                <input type="hidden" name="equipment_id" value="{{.ID}}">
                <input name="days" type="number" min="1" value="1" class="w-20 px-2 py-1 border border-gray-300 rounded-md sm:text-sm">
                <button type="submit" class="px-3 py-1 text-sm rounded-md text-white bg-green-700">Rent</button>
            </form>
        </div>
    {{else}}
        <p class="text-sm text-gray-500">No equipment available.</p>
    {{end}}
    </div>
</div>
{{end}}`,

	"customer/rentals": `{{define "content"}}
<div class="px-4 py-6 sm:px-0">
    <h1 class="text-2xl font-semibold text-gray-900 mb-6">My Rentals</h1>
    {{template "statusFilter" .}}
    <table class="min-w-full divide-y divide-gray-200 bg-white shadow rounded-lg">
        <thead><tr>
            <th class="px-6 py-3 text-left text-xs font-medium text-gray-500 uppercase">Equipment</th>
            <th class="px-6 py-3 text-left text-xs font-medium text-gray-500 uppercase">Days</th>
            <th class="px-6 py-3 text-left text-xs font-medium text-gray-500 uppercase">Total</th>
            <th class="px-6 py-3 text-left text-xs font-medium text-gray-500 uppercase">Status</th>
            <th class="px-6 py-3"></th>
        </tr></thead>
        <tbody class="divide-y divide-gray-200">
        {{range .Rentals}}
            <tr>
                <td class="px-6 py-4 text-sm">{{.EquipmentName}}</td>
                <td class="px-6 py-4 text-sm">{{.Days}}</td>
                <td class="px-6 py-4 text-sm">{{money .Total}}</td>
                <td class="px-6 py-4 text-sm"><span class="px-2 rounded-full {{statusColor .Status}}">{{title (print .Status)}}</span></td>
                <td class="px-6 py-4 text-sm text-right">
                    <form action="/customer/rentals/contract" method="POST">
                        <input type="hidden" name="rental_id" value="{{.ID}}">
                        <button class="text-green-700">Contract</button>
                    </form>
                </td>
            </tr>
        {{else}}
            <tr><td colspan="5" class="px-6 py-4 text-sm text-gray-500 text-center">No rentals found</td></tr>
        {{end}}
        </tbody>
    </table>
</div>
{{end}}`,

	"customer/contract": `{{define "content"}}
<div class="px-4 py-6 sm:px-0">
    <h1 class="text-2xl font-semibold text-gray-900 mb-1">Rental Contract</h1>
    <p class="mb-6 text-sm text-gray-500">{{.Rental.EquipmentName}}, {{.Rental.Days}} days. Generated {{.Contract.GeneratedAt}}</p>
    <iframe sandbox title="Contract" class="w-full bg-white shadow rounded-lg" style="height: 70vh" srcdoc="{{.Contract.ContractHTML}}"></iframe>
    <p class="mt-4"><a href="/customer/rentals" class="text-green-700">Back to rentals</a></p>
</div>
{{end}}`,

	"customer/recommend": `{{define "content"}}
<div class="px-4 py-6 sm:px-0">
    <h1 class="text-2xl font-semibold text-gray-900 mb-6">AI Equipment Recommendations</h1>
    <form action="/customer/ai-recommend" method="POST" class="grid grid-cols-1 gap-3 sm:grid-cols-3 mb-8">
        <input name="farmSize" value="{{.Form.FarmSize}}" placeholder="Farm size (acres)" class="px-3 py-2 border border-gray-300 rounded-md sm:text-sm">
        <input name="cropType" value="{{.Form.CropType}}" placeholder="Crop type" required class="px-3 py-2 border border-gray-300 rounded-md sm:text-sm">
        <input name="season" value="{{.Form.Season}}" placeholder="Season" class="px-3 py-2 border border-gray-300 rounded-md sm:text-sm">
        <input name="budget" value="{{.Form.Budget}}" placeholder="Budget" class="px-3 py-2 border border-gray-300 rounded-md sm:text-sm">
        <input name="soilType" value="{{.Form.SoilType}}" placeholder="Soil type" class="px-3 py-2 border border-gray-300 rounded-md sm:text-sm">
        <button type="submit" class="px-4 py-2 text-sm rounded-md text-white bg-green-700">Get Recommendations</button>
    </form>
    {{with .Result}}
    <ul class="bg-white shadow rounded-lg divide-y divide-gray-200 mb-4">
    {{range $.Recommendations}}
        <li class="px-4 py-3 text-sm">
            <span class="font-medium">#{{.Priority}} {{.Equipment}}</span>, {{.EstimatedDays}} days{{if .Priced}}, about {{money .Cost}}{{end}}
            <p class="text-gray-500">{{.Reason}}</p>
        </li>
    {{else}}
        <li class="px-4 py-4 text-sm text-gray-500 text-center">No recommendations</li>
    {{end}}
    </ul>
    {{if .TotalEstimatedCost}}<p class="text-sm">Estimated total: {{money .TotalEstimatedCost}}</p>{{end}}
    {{if .SeasonalTips}}<p class="text-sm text-gray-600">{{.SeasonalTips}}</p>{{end}}
    {{if .CostAnalysis}}<p class="text-sm text-gray-600">{{.CostAnalysis}}</p>{{end}}
    {{end}}
</div>
{{end}}`,

	"customer/chat": `{{define "content"}}
<div class="px-4 py-6 sm:px-0 max-w-3xl">
    <h1 class="text-2xl font-semibold text-gray-900 mb-6">AgriBot Assistant</h1>
    {{if .Question}}
    <div class="mb-4 space-y-2">
        <div class="p-3 rounded-lg bg-green-50 text-sm"><span class="font-medium">You:</span> {{.Question}}</div>
        <div class="p-3 rounded-lg bg-white shadow text-sm whitespace-pre-line"><span class="font-medium">AgriBot:</span> {{.Answer}}</div>
    </div>
    {{end}}
    <form action="/customer/ai-chat" method="POST" class="flex space-x-2 mb-6">
        <input name="question" type="text" required placeholder="Ask about equipment, pricing, or farming" class="flex-1 px-3 py-2 border border-gray-300 rounded-md sm:text-sm">
        <button type="submit" class="px-4 py-2 text-sm rounded-md text-white bg-green-700">Send</button>
    </form>
    <div class="space-y-2">
    {{range .QuickQuestions}}
        <form action="/customer/ai-chat" method="POST">
            <input type="hidden" name="question" value="{{.}}">
            <button class="text-sm text-green-700 hover:underline">{{.}}</button>
        </form>
    {{end}}
    </div>
</div>
{{end}}`,
}
