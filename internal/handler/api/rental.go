package api

import (
	"errors"
	"net/http"

	reqdto "masterbikes-api/internal/handler/dto/request"
	resdto "masterbikes-api/internal/handler/dto/response"
	"masterbikes-api/internal/pkg/errs"
	"masterbikes-api/internal/usecase/commands"
	"masterbikes-api/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type RentalHandler struct {
	rentalCommands commands.RentalCommands
	rentalQueries  queries.RentalQueries
}

func NewRentalHandler(rentalCommands commands.RentalCommands, rentalQueries queries.RentalQueries) *RentalHandler {
	return &RentalHandler{
		rentalCommands: rentalCommands,
		rentalQueries:  rentalQueries,
	}
}

// @Summary Create rental
// @Description Register a new bicycle rental order
// @Tags rentals
// @Accept json
// @Produce json
// @Param request body reqdto.CreateRentalRequest true "Rental request"
// @Success 201 {object} resdto.RentalResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Failure 502 {object} map[string]string
// @Router /rentals [post]
func (h *RentalHandler) CreateRental(c *gin.Context) {
	var req reqdto.CreateRentalRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	params, err := req.ToParams()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid date format, expected YYYY-MM-DD",
		})
		return
	}

	rentalView, err := h.rentalCommands.Create(c.Request.Context(), params)
	if err != nil {
		h.respondRentalError(c, err)
		return
	}

	c.JSON(http.StatusCreated, resdto.FromRentalView(rentalView))
}

// @Summary Get rental
// @Description Get a rental order by ID
// @Tags rentals
// @Produce json
// @Param id path string true "Rental ID"
// @Success 200 {object} resdto.RentalResponse
// @Failure 404 {object} map[string]string
// @Router /rentals/{id} [get]
func (h *RentalHandler) GetRental(c *gin.Context) {
	rentalID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid rental ID",
		})
		return
	}

	rentalView, err := h.rentalQueries.GetByID(c.Request.Context(), rentalID)
	if err != nil {
		h.respondRentalError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromRentalView(rentalView))
}

// @Summary List rentals
// @Description List rental orders filtered by status or customer RUT
// @Tags rentals
// @Produce json
// @Param status query string false "Rental status (active or finished)"
// @Param customer_rut query string false "Customer RUT"
// @Success 200 {array} resdto.RentalResponse
// @Failure 400 {object} map[string]string
// @Router /rentals [get]
func (h *RentalHandler) ListRentals(c *gin.Context) {
	customerRut := c.Query("customer_rut")
	status := c.Query("status")

	switch {
	case customerRut != "":
		views, err := h.rentalQueries.ListByCustomer(c.Request.Context(), customerRut)
		if err != nil {
			h.respondRentalError(c, err)
			return
		}
		c.JSON(http.StatusOK, resdto.FromRentalViews(views))
	case status != "":
		views, err := h.rentalQueries.ListByStatus(c.Request.Context(), status)
		if err != nil {
			if errors.Is(err, errs.ErrInvalidRentalStatus) {
				c.JSON(http.StatusBadRequest, gin.H{
					"error": "Invalid rental status",
				})
				return
			}
			h.respondRentalError(c, err)
			return
		}
		c.JSON(http.StatusOK, resdto.FromRentalViews(views))
	default:
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Either status or customer_rut query parameter is required",
		})
	}
}

// @Summary List active rentals
// @Description List all rental orders that have not been finished yet
// @Tags rentals
// @Produce json
// @Success 200 {array} resdto.RentalResponse
// @Router /rentals/active [get]
func (h *RentalHandler) ListActiveRentals(c *gin.Context) {
	views, err := h.rentalQueries.ListActive(c.Request.Context())
	if err != nil {
		h.respondRentalError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromRentalViews(views))
}

// @Summary Finish rental
// @Description Mark an active rental as finished
// @Tags rentals
// @Produce json
// @Param id path string true "Rental ID"
// @Success 200 {object} resdto.RentalResponse
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /rentals/{id}/finish [put]
func (h *RentalHandler) FinishRental(c *gin.Context) {
	rentalID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid rental ID",
		})
		return
	}

	rentalView, err := h.rentalCommands.Finish(c.Request.Context(), rentalID)
	if err != nil {
		h.respondRentalError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromRentalView(rentalView))
}

func (h *RentalHandler) respondRentalError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, errs.ErrCustomerRutRequired):
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Customer RUT is required",
		})
	case errors.Is(err, errs.ErrInvalidRentalPeriod):
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "End date must not be before start date",
		})
	case errors.Is(err, errs.ErrRentalNotFound):
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Rental not found",
		})
	case errors.Is(err, errs.ErrBikeNotFound):
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Bike not found",
		})
	case errors.Is(err, errs.ErrBikeUnavailable):
		c.JSON(http.StatusConflict, gin.H{
			"error": "Bike is not available for rental",
		})
	case errors.Is(err, errs.ErrRentalAlreadyFinished):
		c.JSON(http.StatusConflict, gin.H{
			"error": "Rental is already finished",
		})
	case errors.Is(err, errs.ErrInventoryUnavailable):
		c.JSON(http.StatusBadGateway, gin.H{
			"error": "Inventory service is unavailable",
		})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
	}
}
