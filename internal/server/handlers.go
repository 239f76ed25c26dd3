package server

import (
	"encoding/json"
	"log"
	"net/http"
	"strconv"
	"strings"

	"github.com/gorilla/mux"
	"golang.org/x/text/message"

	"github.com/vukan322/rustkit/internal/core"
	"github.com/vukan322/rustkit/internal/decay"
	"github.com/vukan322/rustkit/internal/i18n"
	"github.com/vukan322/rustkit/internal/lookup"
	"github.com/vukan322/rustkit/internal/monuments"
	"github.com/vukan322/rustkit/internal/render"
)

type handlers struct {
	resolver *lookup.Resolver
	logger   *log.Logger
}

type errorBody struct {
	Code    core.Code `json:"code"`
	Message string    `json:"message"`
}

// lookupResponse is the wire form of a lookup.Result: either Stats or Error
// is set, never both.
type lookupResponse struct {
	ID     string            `json:"id"`
	Seq    uint64            `json:"seq,omitempty"`
	Input  string            `json:"input"`
	Status string            `json:"status"`
	Stats  *core.PlayerStats `json:"stats,omitempty"`
	Error  *errorBody        `json:"error,omitempty"`
}

func newLookupResponse(res lookup.Result, p *message.Printer) lookupResponse {
	out := lookupResponse{ID: res.ID, Seq: res.Seq, Input: res.Input}
	if res.Failed() {
		out.Status = "failed"
		out.Error = &errorBody{Code: res.Code(), Message: i18n.ErrorMessage(p, res.Code())}
		return out
	}
	out.Status = "resolved"
	out.Stats = res.Stats
	return out
}

// statusFor maps a lookup failure to an HTTP status.
func statusFor(code core.Code) int {
	switch code {
	case core.CodeInvalidProfileURL:
		return http.StatusBadRequest
	case core.CodeVanityNotFound, core.CodeProfileNotFound:
		return http.StatusNotFound
	default:
		return http.StatusBadGateway
	}
}

func (h *handlers) healthz(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *handlers) stats(w http.ResponseWriter, r *http.Request) {
	p := i18n.Printer(i18n.ResolveTag(r))
	player, ok := playerParam(w, r)
	if !ok {
		return
	}

	res := h.resolver.Resolve(r.Context(), player)
	status := http.StatusOK
	if res.Failed() {
		status = statusFor(res.Code())
	}
	writeJSON(w, status, newLookupResponse(res, p))
}

func (h *handlers) statsCard(w http.ResponseWriter, r *http.Request) {
	p := i18n.Printer(i18n.ResolveTag(r))
	player, ok := playerParam(w, r)
	if !ok {
		return
	}

	res := h.resolver.Resolve(r.Context(), player)
	if res.Failed() {
		writeJSON(w, statusFor(res.Code()), newLookupResponse(res, p))
		return
	}

	svg, err := render.RenderSVG(*res.Stats, p)
	if err != nil {
		h.logger.Printf("render card for %s: %v", res.ID, err)
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "image/svg+xml")
	w.Header().Set("Cache-Control", "no-store")
	_, _ = w.Write(svg)
}

type materialView struct {
	Name           string  `json:"name"`
	MaxHealth      float64 `json:"max_health"`
	FullDecayHours float64 `json:"full_decay_hours"`
	Image          string  `json:"image"`
}

func newMaterialView(m decay.Material) materialView {
	return materialView{
		Name:           m.Name,
		MaxHealth:      m.MaxHealth,
		FullDecayHours: m.FullDecayHours(),
		Image:          m.Image,
	}
}

func (h *handlers) materials(w http.ResponseWriter, r *http.Request) {
	list := decay.Materials()
	out := make([]materialView, 0, len(list))
	for _, m := range list {
		out = append(out, newMaterialView(m))
	}
	writeJSON(w, http.StatusOK, out)
}

type decayResponse struct {
	Material materialView   `json:"material"`
	Health   float64        `json:"health"`
	Estimate decay.Estimate `json:"estimate"`
	Display  string         `json:"display"`
	Note     string         `json:"note"`
}

// decay clamps the requested health to the material's range before
// projecting; a missing health means full health.
func (h *handlers) decay(w http.ResponseWriter, r *http.Request) {
	p := i18n.Printer(i18n.ResolveTag(r))
	q := r.URL.Query()

	m, ok := decay.Find(q.Get("material"))
	if !ok {
		writeJSON(w, http.StatusNotFound, errorBody{Code: "UNKNOWN_MATERIAL", Message: "unknown material"})
		return
	}

	health := m.MaxHealth
	if raw := strings.TrimSpace(q.Get("health")); raw != "" {
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			writeJSON(w, http.StatusBadRequest, errorBody{Code: "INVALID_HEALTH", Message: "health must be a number"})
			return
		}
		health = decay.Clamp(m, v)
	}

	est := decay.Project(m, health)
	writeJSON(w, http.StatusOK, decayResponse{
		Material: newMaterialView(m),
		Health:   health,
		Estimate: est,
		Display:  p.Sprintf(i18n.MsgDecayResult, est.String()),
		Note:     p.Sprintf(i18n.MsgDecayNote),
	})
}

func (h *handlers) monuments(w http.ResponseWriter, r *http.Request) {
	raw := r.URL.Query().Get("keycard")
	if raw == "" {
		writeJSON(w, http.StatusOK, monuments.All())
		return
	}
	card, ok := monuments.ParseKeycard(raw)
	if !ok {
		writeJSON(w, http.StatusBadRequest, errorBody{Code: "INVALID_KEYCARD", Message: "keycard must be green, blue or red"})
		return
	}
	out := monuments.RequiringKeycard(card)
	if out == nil {
		out = []monuments.Monument{}
	}
	writeJSON(w, http.StatusOK, out)
}

func (h *handlers) monument(w http.ResponseWriter, r *http.Request) {
	m, ok := monuments.Find(mux.Vars(r)["id"])
	if !ok {
		writeJSON(w, http.StatusNotFound, errorBody{Code: "UNKNOWN_MONUMENT", Message: "unknown monument"})
		return
	}
	writeJSON(w, http.StatusOK, m)
}

func playerParam(w http.ResponseWriter, r *http.Request) (string, bool) {
	q := r.URL.Query()
	if !q.Has("player") {
		writeJSON(w, http.StatusBadRequest, errorBody{Code: "MISSING_PLAYER", Message: "player query parameter is required"})
		return "", false
	}
	return q.Get("player"), true
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("encode response: %v", err)
	}
}
