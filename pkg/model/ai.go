package model

import "time"

// RecommendRequest is the farm profile sent to POST /ai/recommend.
type RecommendRequest struct {
	FarmSize        string   `json:"farmSize"`
	CropType        string   `json:"cropType"`
	Season          string   `json:"season"`
	Budget          string   `json:"budget"`
	SoilType        string   `json:"soilType"`
	PreviousRentals []string `json:"previousRentals"`
}

// Recommendation is a single suggested piece of equipment.
type Recommendation struct {
	Equipment     string `json:"equipment"`
	Reason        string `json:"reason"`
	Priority      int    `json:"priority"`
	EstimatedDays int    `json:"estimatedDays"`
}

// EstimatedCost prices the recommendation against the inventory.
// It returns false when the equipment is not in the list.
func (r Recommendation) EstimatedCost(items []Equipment) (float64, bool) {
	eq := FindEquipment(items, r.Equipment)
	if eq == nil {
		return 0, false
	}
	return eq.Price * float64(r.EstimatedDays), true
}

// RecommendResponse is returned by POST /ai/recommend.
type RecommendResponse struct {
	Recommendations    []Recommendation `json:"recommendations"`
	TotalEstimatedCost float64          `json:"totalEstimatedCost,omitempty"`
	SeasonalTips       string           `json:"seasonalTips,omitempty"`
	CostAnalysis       string           `json:"costAnalysis,omitempty"`
}

// ChatContext is the context sent along with a chat question.
type ChatContext struct {
	Equipment []Equipment `json:"equipment,omitempty"`
	UserType  string      `json:"userType,omitempty"`
	Season    string      `json:"season,omitempty"`
}

// SeasonFor names the farming season used as chat context:
// Spring (Feb-May), Monsoon (Jun-Sep), Autumn (Oct-Nov), otherwise Winter.
func SeasonFor(t time.Time) string {
	switch m := t.Month(); {
	case m >= time.February && m <= time.May:
		return "Spring"
	case m >= time.June && m <= time.September:
		return "Monsoon"
	case m >= time.October && m <= time.November:
		return "Autumn"
	default:
		return "Winter"
	}
}

// ChatRequest is the body of POST /ai/chat.
type ChatRequest struct {
	Question string      `json:"question"`
	Context  ChatContext `json:"context"`
}

// ChatResponse is returned by POST /ai/chat.
type ChatResponse struct {
	Response  string  `json:"response"`
	Timestamp float64 `json:"timestamp"`
}

// ContractRequest is the body of POST /ai/contract.
type ContractRequest struct {
	CustomerName  string  `json:"customerName"`
	EquipmentName string  `json:"equipmentName"`
	Days          int     `json:"days"`
	StartDate     string  `json:"startDate"`
	DailyRate     float64 `json:"dailyRate"`
	TotalCost     float64 `json:"totalCost"`
	Deposit       float64 `json:"deposit"`
}

// ContractResponse is returned by POST /ai/contract.
type ContractResponse struct {
	ContractHTML string `json:"contractHtml"`
	GeneratedAt  string `json:"generatedAt"`
}
