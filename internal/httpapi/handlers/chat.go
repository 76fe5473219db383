package handlers

import (
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/janseva/assistant/internal/assistant"
)

type chatReq struct {
	Message        string  `json:"message"`
	ConversationID *string `json:"conversation_id"`
	Language       *string `json:"language"`
	EnableTTS      bool    `json:"enable_tts"`
}

type chatResp struct {
	Reply            string  `json:"reply"`
	DetectedLanguage string  `json:"detected_language"`
	ConversationID   string  `json:"conversation_id"`
	Status           string  `json:"status"`
	AudioURL         *string `json:"audio_url"`
	Timestamp        float64 `json:"timestamp"`
}

type voiceResp struct {
	TranscribedText string `json:"transcribed_text"`
	chatResp
}

func toChatResp(out *assistant.ChatOutput) chatResp {
	r := chatResp{
		Reply:            out.Reply,
		DetectedLanguage: out.DetectedLanguage.String(),
		ConversationID:   out.ConversationID,
		Status:           "success",
		Timestamp:        out.Timestamp,
	}
	if out.AudioURL != "" {
		u := out.AudioURL
		r.AudioURL = &u
	}
	return r
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func (h *Handler) Chat(c *gin.Context) {
	var req chatReq
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusUnprocessableEntity, codeInvalidRequest, "invalid json body")
		return
	}

	out, err := h.Svc.Chat(c.Request.Context(), assistant.ChatInput{
		Message:        req.Message,
		ConversationID: deref(req.ConversationID),
		Language:       deref(req.Language),
		EnableTTS:      req.EnableTTS,
	})
	if err != nil {
		failService(c, err, "Chat processing failed", codeChatFailed)
		return
	}
	ok(c, toChatResp(out))
}

// ChatVoice reads conversation_id and enable_tts from the query string or
// the multipart form.
func (h *Handler) ChatVoice(c *gin.Context) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, h.MaxUploadBytes)

	fh, err := c.FormFile("audio")
	if err != nil {
		fail(c, http.StatusUnprocessableEntity, codeInvalidRequest, "multipart field 'audio' is required")
		return
	}

	enableTTS := true
	if raw := formOrQuery(c, "enable_tts"); raw != "" {
		v, err := strconv.ParseBool(raw)
		if err != nil {
			fail(c, http.StatusUnprocessableEntity, codeInvalidRequest, "enable_tts must be a boolean")
			return
		}
		enableTTS = v
	}

	f, err := fh.Open()
	if err != nil {
		fail(c, http.StatusUnprocessableEntity, codeInvalidRequest, "cannot read audio upload")
		return
	}
	defer f.Close()
	audio, err := io.ReadAll(f)
	if err != nil {
		fail(c, http.StatusUnprocessableEntity, codeInvalidRequest, "cannot read audio upload")
		return
	}

	out, err := h.Svc.VoiceChat(c.Request.Context(), assistant.VoiceInput{
		Audio:          audio,
		Filename:       fh.Filename,
		ConversationID: formOrQuery(c, "conversation_id"),
		EnableTTS:      enableTTS,
	})
	if err != nil {
		failService(c, err, "Voice processing failed", codeVoiceFailed)
		return
	}
	ok(c, voiceResp{TranscribedText: out.TranscribedText, chatResp: toChatResp(&out.ChatOutput)})
}

func formOrQuery(c *gin.Context, key string) string {
	if v := strings.TrimSpace(c.Query(key)); v != "" {
		return v
	}
	return strings.TrimSpace(c.PostForm(key))
}
