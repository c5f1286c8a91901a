package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/wagetime/wagetime-backend-go/internal/domain/policy"
	"github.com/wagetime/wagetime-backend-go/internal/handler/http/response"
)

type PolicyHandler interface {
	Update(w http.ResponseWriter, r *http.Request)
}

type policyHandlerImpl struct {
	policyService policy.PolicyService
}

func NewPolicyHandler(policyService policy.PolicyService) PolicyHandler {
	return &policyHandlerImpl{
		policyService: policyService,
	}
}

// Update stores a new version of the policy named in the URL. The body is the
// raw policy configuration; it is validated before being versioned in.
func (h *policyHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	act, ok := actor(w, r)
	if !ok {
		return
	}

	var config json.RawMessage
	if err := json.NewDecoder(r.Body).Decode(&config); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	result, err := h.policyService.Update(r.Context(), act, policy.PolicyType(chi.URLParam(r, "type")), config)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Policy updated", result)
}
