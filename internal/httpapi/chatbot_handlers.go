package httpapi

import (
	"net/http"
	"strings"

	"aureon.ai/internal/audit"
	"aureon.ai/internal/chatbot"
)

type chatbotMessageRequest struct {
	Message string `json:"message"`
}

func (a *API) handleChatbotMessage(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		methodNotAllowed(w, r, http.MethodPost)
		return
	}

	var req chatbotMessageRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, r, http.StatusBadRequest, err.Error())
		return
	}
	if strings.TrimSpace(req.Message) == "" {
		writeError(w, r, http.StatusBadRequest, "message is required")
		return
	}

	reply, err := a.chatbot.Reply(r.Context(), req.Message)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"reply": reply})
}

func (a *API) handleChatbotRulesCollection(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		rules, err := a.chatbot.ListRules(r.Context())
		if err != nil {
			writeServiceError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, collection(rules))
	case http.MethodPost:
		var rule chatbot.Rule
		if err := decodeJSON(w, r, &rule); err != nil {
			writeError(w, r, http.StatusBadRequest, err.Error())
			return
		}
		rule.ID = ""
		created, err := a.chatbot.CreateRule(r.Context(), &rule)
		if err != nil {
			writeServiceError(w, r, err)
			return
		}
		_ = audit.LogEvent(r.Context(), "chatbot.rule.created", map[string]any{"rule_id": created.ID})
		writeJSON(w, http.StatusCreated, created)
	default:
		methodNotAllowed(w, r, http.MethodGet, http.MethodPost)
	}
}

func (a *API) handleChatbotRuleResource(w http.ResponseWriter, r *http.Request) {
	id, ok := resourceID(w, r, "/admin/chatbot/rules/")
	if !ok {
		return
	}
	switch r.Method {
	case http.MethodGet:
		rule, err := a.chatbot.FindRule(r.Context(), id)
		if err != nil {
			writeServiceError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, rule)
	case http.MethodPut:
		var rule chatbot.Rule
		if err := decodeJSON(w, r, &rule); err != nil {
			writeError(w, r, http.StatusBadRequest, err.Error())
			return
		}
		rule.ID = id
		updated, err := a.chatbot.UpdateRule(r.Context(), &rule)
		if err != nil {
			writeServiceError(w, r, err)
			return
		}
		_ = audit.LogEvent(r.Context(), "chatbot.rule.updated", map[string]any{"rule_id": id})
		writeJSON(w, http.StatusOK, updated)
	case http.MethodDelete:
		if err := a.chatbot.DeleteRule(r.Context(), id); err != nil {
			writeServiceError(w, r, err)
			return
		}
		_ = audit.LogEvent(r.Context(), "chatbot.rule.deleted", map[string]any{"rule_id": id})
		writeJSON(w, http.StatusOK, map[string]any{"status": "deleted"})
	default:
		methodNotAllowed(w, r, http.MethodGet, http.MethodPut, http.MethodDelete)
	}
}
