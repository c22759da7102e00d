package handler

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/sirupsen/logrus"

	"go-waitlist-api/common"
	"go-waitlist-api/logger"
	"go-waitlist-api/model"
	"go-waitlist-api/service"
)

type SignupHandler struct {
	service *service.SignupService
}

func NewSignupHandler(service *service.SignupService) *SignupHandler {
	return &SignupHandler{service: service}
}

// Create godoc
// @Summary      Submit a waitlist signup
// @Description  Validates the signup and relays it to the form-intake service. The submission always resolves to the submitted state; delivery reports whether it was actually transmitted or simulated.
// @Tags         signups
// @Accept       json
// @Produce      json
// @Param        signup  body      model.SignupRequest  true  "Signup payload"
// @Success      200     {object}  model.SignupResponse
// @Failure      400     {object}  common.AppError
// @Failure      422     {object}  map[string]interface{}
// @Router       /api/signups [post]
func (h *SignupHandler) Create(w http.ResponseWriter, r *http.Request) *common.AppError {
	if r.Method != http.MethodPost {
		return common.NewAppError(http.StatusMethodNotAllowed, "Method not allowed", nil)
	}

	var req model.SignupRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		return common.NewAppError(http.StatusBadRequest, "Invalid request body", err)
	}

	req.Name = strings.TrimSpace(req.Name)
	req.Email = strings.TrimSpace(req.Email)

	// Validation runs before the submission handler is ever invoked; a
	// failing payload never transitions out of the form state.
	if fieldErrors := common.ValidateStruct(&req); len(fieldErrors) > 0 {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnprocessableEntity)
		json.NewEncoder(w).Encode(struct {
			State  string              `json:"state"`
			Errors []common.FieldError `json:"errors"`
		}{model.StateForm.String(), fieldErrors})
		return nil
	}

	log := logger.Log.WithFields(logrus.Fields{
		"role":  req.Role,
		"email": req.Email,
	})
	log.Info("Signup request received")

	resp := model.SignupResponse{
		State:    model.StateSubmitted.String(),
		Delivery: model.DeliveryDelivered,
	}

	// A failed transmission is swallowed here: the signup still reaches the
	// submitted state, and only the delivery field and notice betray that it
	// was simulated.
	if err := h.service.Submit(r.Context(), req); err != nil {
		resp.Delivery = model.DeliverySimulated
		resp.Notice = model.SimulatedNotice
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(resp)

	return nil
}
