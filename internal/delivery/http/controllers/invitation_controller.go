package controllers

import (
	"errors"
	"log/slog"
	"net/http"

	"invitationservice/internal/delivery/http/helpers"
	"invitationservice/internal/domain"
)

type InvitationController struct {
	Logger  *slog.Logger
	Service domain.InvitationService
}

func NewInvitationController(logger *slog.Logger, svc domain.InvitationService) *InvitationController {
	return &InvitationController{
		Logger:  logger,
		Service: svc,
	}
}

// InviteeRequest documents the parameters accepted by /invitation. They may also be sent
// as query parameters or a urlencoded form.
type InviteeRequest struct {
	Invitee string `json:"invitee"`
	Email   string `json:"email"`
}

// Create godoc
// @Summary Invite someone
// @Description Adds a new invitee. The name must not be on the list yet and the email must contain exactly one "@".
// @Tags invitation
// @Accept json
// @Produce json
// @Param body body controllers.InviteeRequest true "Invitee name and email"
// @Success 201 {object} domain.Invitee
// @Failure 400 {object} helpers.ErrorResponse "errors keyed by field"
// @Router /invitation [post]
func (c *InvitationController) Create(w http.ResponseWriter, r *http.Request) {
	params, ok := helpers.DecodeParams(w, r)
	if !ok {
		return
	}
	inv, err := c.Service.Create(r.Context(), params.Get(domain.FieldInvitee), params.Get(domain.FieldEmail))
	if err != nil {
		c.writeError(w, r, err)
		return
	}
	helpers.WriteJSON(w, http.StatusCreated, inv)
}

// Retrieve godoc
// @Summary Get one invitee or the whole list
// @Description Without invitee, returns every invitee sorted by name. With invitee, returns that record; the invitee must exist.
// @Tags invitation
// @Produce json
// @Param invitee query string false "Invitee name"
// @Success 200 {object} domain.Invitee "single invitee when invitee is given"
// @Success 200 {array} domain.Invitee "sorted list when invitee is omitted"
// @Failure 400 {object} helpers.ErrorResponse "errors keyed by field"
// @Router /invitation [get]
func (c *InvitationController) Retrieve(w http.ResponseWriter, r *http.Request) {
	params, ok := helpers.DecodeParams(w, r)
	if !ok {
		return
	}
	name := params.Get(domain.FieldInvitee)
	if name == nil {
		invs, err := c.Service.List(r.Context())
		if err != nil {
			c.writeError(w, r, err)
			return
		}
		helpers.WriteJSON(w, http.StatusOK, invs)
		return
	}
	inv, err := c.Service.Retrieve(r.Context(), *name)
	if err != nil {
		c.writeError(w, r, err)
		return
	}
	helpers.WriteJSON(w, http.StatusOK, inv)
}

// Update godoc
// @Summary Change an invitee's email
// @Description Updates an existing invitee. Only fields that changed are written.
// @Tags invitation
// @Accept json
// @Produce json
// @Param body body controllers.InviteeRequest true "Invitee name and new email"
// @Success 200 {object} domain.Invitee
// @Failure 400 {object} helpers.ErrorResponse "errors keyed by field"
// @Router /invitation [put]
func (c *InvitationController) Update(w http.ResponseWriter, r *http.Request) {
	params, ok := helpers.DecodeParams(w, r)
	if !ok {
		return
	}
	inv, err := c.Service.Update(r.Context(), params.Get(domain.FieldInvitee), params.Get(domain.FieldEmail))
	if err != nil {
		c.writeError(w, r, err)
		return
	}
	helpers.WriteJSON(w, http.StatusOK, inv)
}

// Delete godoc
// @Summary Remove an invitee
// @Description Removes an existing invitee from the list.
// @Tags invitation
// @Param invitee query string true "Invitee name"
// @Success 204 "No Content"
// @Failure 400 {object} helpers.ErrorResponse "errors keyed by field"
// @Router /invitation [delete]
func (c *InvitationController) Delete(w http.ResponseWriter, r *http.Request) {
	params, ok := helpers.DecodeParams(w, r)
	if !ok {
		return
	}
	if err := c.Service.Delete(r.Context(), params.Get(domain.FieldInvitee)); err != nil {
		c.writeError(w, r, err)
		return
	}
	helpers.WriteNoContent(w)
}

func (c *InvitationController) writeError(w http.ResponseWriter, r *http.Request, err error) {
	var fe domain.FieldErrors
	if errors.As(err, &fe) {
		helpers.WriteFieldErrors(w, http.StatusBadRequest, fe)
		return
	}
	c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
	helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrKeyServer, "internal error")
}
