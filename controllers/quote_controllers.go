package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/ardiansyah/laundry-pos/pricing"
	"github.com/ardiansyah/laundry-pos/utils"
)

type QuoteController struct {
	Engine *pricing.Engine
}

func NewQuoteController(db *gorm.DB) *QuoteController {
	return &QuoteController{Engine: pricing.NewEngine(db)}
}

// GetQuote menghitung harga untuk satu kombinasi (offering, customer,
// quantity, dimensi). Dipanggil berulang oleh wizard setiap input keranjang
// settle; stateless di sisi server.
func (qc *QuoteController) GetQuote(c *gin.Context) {
	var req pricing.Request
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	result, err := qc.Engine.Quote(c.Request.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, pricing.ErrDimensionsRequired),
			errors.Is(err, pricing.ErrInvalidQuantity),
			errors.Is(err, pricing.ErrOfferingInactive):
			utils.RespondError(c, http.StatusBadRequest, err)
		default:
			utils.RespondError(c, http.StatusNotFound, err)
		}
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Quote calculated", result)
}
