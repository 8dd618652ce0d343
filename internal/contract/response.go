package contract

import (
	"github.com/alexanderramin/workbrief/internal/domain"
	"github.com/alexanderramin/workbrief/internal/intelligence"
)

// Response is the envelope of every API answer.
type Response struct {
	Success bool   `json:"success"`
	Data    any    `json:"data,omitempty"`
	Message string `json:"message,omitempty"`
	Error   string `json:"error,omitempty"`
}

type HealthResponse struct {
	Status        string `json:"status"`
	LLMConfigured bool   `json:"llm_configured"`
	MaxInputChars int    `json:"max_input_chars"`
}

type WeekRangeResponse struct {
	Monday string `json:"monday"`
	Friday string `json:"friday"`
}

// NewWeekRangeResponse renders r with the Monday/Friday field names.
func NewWeekRangeResponse(r domain.WeekRange) WeekRangeResponse {
	return WeekRangeResponse{Monday: r.Start.String(), Friday: r.End.String()}
}

type GenerateWeeklyResponse struct {
	Success    bool                          `json:"success"`
	Report     string                        `json:"report"`
	ParsedData domain.ParsedData             `json:"parsed_data"`
	Validation intelligence.WeeklyValidation `json:"validation"`
	Mock       bool                          `json:"mock"`
	Model      string                        `json:"model"`
}

func NewGenerateWeeklyResponse(r *intelligence.WeeklyResult) GenerateWeeklyResponse {
	return GenerateWeeklyResponse{
		Success:    true,
		Report:     r.Report,
		ParsedData: r.Parsed,
		Validation: r.Validation,
		Mock:       r.Mock,
		Model:      r.Model,
	}
}

type GenerateOKRResponse struct {
	Success    bool                       `json:"success"`
	OKR        string                     `json:"okr"`
	Quarter    string                     `json:"quarter"`
	Validation intelligence.OKRValidation `json:"validation"`
	Mock       bool                       `json:"mock"`
	Model      string                     `json:"model"`
}

func NewGenerateOKRResponse(r *intelligence.OKRResult) GenerateOKRResponse {
	return GenerateOKRResponse{
		Success:    true,
		OKR:        r.OKR,
		Quarter:    r.Quarter,
		Validation: r.Validation,
		Mock:       r.Mock,
		Model:      r.Model,
	}
}

type ValidationResponse struct {
	Success    bool `json:"success"`
	Validation any  `json:"validation"`
}
