package handler

import (
	"math"
	"net/http"

	"github.com/labstack/echo/v4"
)

// CalculatorHandler backs the ROI calculator page. Pure computation, no
// dependencies.
type CalculatorHandler struct{}

func NewCalculatorHandler() *CalculatorHandler {
	return &CalculatorHandler{}
}

// Four and a third working weeks per month.
const weeksPerMonth = 4.33

type roiRequest struct {
	Employees         int     `json:"employees"         validate:"required,gte=1"`
	HourlyRate        float64 `json:"hourlyRate"        validate:"required,gt=0"`
	HoursSavedPerWeek float64 `json:"hoursSavedPerWeek" validate:"required,gt=0"`
	ToolCostMonthly   float64 `json:"toolCostMonthly"   validate:"gte=0"`
}

type roiResult struct {
	MonthlySavings float64 `json:"monthlySavings"`
	AnnualSavings  float64 `json:"annualSavings"`
	MonthlyCost    float64 `json:"monthlyCost"`
	NetMonthly     float64 `json:"netMonthly"`
	ROIPercent     float64 `json:"roiPercent,omitempty"`
}

type roiResponse struct {
	Result roiResult `json:"result"`
}

// ROI handles POST /api/calculators/roi.
//
// @Summary      Estimate savings from automating with AI tools
// @Tags         calculators
// @Accept       json
// @Produce      json
// @Param        body  body      roiRequest  true  "Calculator inputs"
// @Success      200   {object}  roiResponse
// @Failure      400   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /api/calculators/roi [post]
func (h *CalculatorHandler) ROI(c echo.Context) error {
	var req roiRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, errorResponse{Error: err.Error()})
	}

	monthly := req.HoursSavedPerWeek * weeksPerMonth * req.HourlyRate * float64(req.Employees)
	result := roiResult{
		MonthlySavings: round2(monthly),
		AnnualSavings:  round2(monthly * 12),
		MonthlyCost:    round2(req.ToolCostMonthly),
		NetMonthly:     round2(monthly - req.ToolCostMonthly),
	}
	if req.ToolCostMonthly > 0 {
		result.ROIPercent = round2((monthly - req.ToolCostMonthly) / req.ToolCostMonthly * 100)
	}

	return c.JSON(http.StatusOK, roiResponse{Result: result})
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
