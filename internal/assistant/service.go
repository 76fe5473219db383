package assistant

import (
	"context"
	"errors"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/janseva/assistant/internal/audiocache"
	"github.com/janseva/assistant/internal/chat"
	"github.com/janseva/assistant/internal/events"
	"github.com/janseva/assistant/internal/lang"
	"github.com/janseva/assistant/internal/translit"
)

const MaxMessageRunes = 2000

type ReplyGenerator interface {
	Generate(ctx context.Context, userText string, code lang.Code) (string, error)
}

type Transcriber interface {
	Transcribe(ctx context.Context, audio []byte, filename string) (string, error)
}

type Synthesizer interface {
	Synthesize(ctx context.Context, text string, code lang.Code) ([]byte, error)
}

type Normalizer interface {
	Normalize(text string, code lang.Code) string
}

type Deps struct {
	Generator     ReplyGenerator
	Transcriber   Transcriber
	Synthesizer   Synthesizer
	Normalizer    Normalizer
	Conversations chat.Store
	Audio         audiocache.Cache
	Events        events.Publisher
	Now           func() time.Time
}

type Service struct {
	gen    ReplyGenerator
	stt    Transcriber
	tts    Synthesizer
	norm   Normalizer
	convs  chat.Store
	audio  audiocache.Cache
	events events.Publisher
	locks  *chat.Locker
	now    func() time.Time
}

type ChatInput struct {
	Message        string
	ConversationID string
	Language       string
	EnableTTS      bool
}

type ChatOutput struct {
	Reply            string
	DetectedLanguage lang.Code
	ConversationID   string
	AudioURL         string
	Timestamp        float64
}

type VoiceInput struct {
	Audio          []byte
	Filename       string
	ConversationID string
	EnableTTS      bool
}

type VoiceOutput struct {
	ChatOutput
	TranscribedText string
}

func NewService(d Deps) (*Service, error) {
	if d.Generator == nil {
		return nil, errors.New("assistant: reply generator must not be nil")
	}
	if d.Transcriber == nil {
		return nil, errors.New("assistant: transcriber must not be nil")
	}
	if d.Synthesizer == nil {
		return nil, errors.New("assistant: synthesizer must not be nil")
	}
	if d.Conversations == nil {
		return nil, errors.New("assistant: conversation store must not be nil")
	}
	if d.Audio == nil {
		return nil, errors.New("assistant: audio cache must not be nil")
	}
	s := &Service{
		gen:    d.Generator,
		stt:    d.Transcriber,
		tts:    d.Synthesizer,
		norm:   d.Normalizer,
		convs:  d.Conversations,
		audio:  d.Audio,
		events: d.Events,
		locks:  chat.NewLocker(),
		now:    d.Now,
	}
	if s.norm == nil {
		s.norm = translit.NewNormalizer(nil)
	}
	if s.events == nil {
		s.events = events.Nop{}
	}
	if s.now == nil {
		s.now = time.Now
	}
	return s, nil
}

func (s *Service) Chat(ctx context.Context, in ChatInput) (*ChatOutput, error) {
	msg := strings.TrimSpace(in.Message)
	if msg == "" {
		return nil, newError(KindValidation, "message must not be empty", nil)
	}
	if utf8.RuneCountInString(msg) > MaxMessageRunes {
		return nil, newError(KindValidation, "message must be at most 2000 characters", nil)
	}
	convID, err := resolveConversationID(in.ConversationID)
	if err != nil {
		return nil, err
	}

	code := lang.Detect(msg, in.Language)
	return s.turn(ctx, turn{
		text:      msg,
		code:      code,
		convID:    convID,
		enableTTS: in.EnableTTS,
		channel:   events.ChannelText,
	})
}

// VoiceChat derives the language from the transcription alone.
func (s *Service) VoiceChat(ctx context.Context, in VoiceInput) (*VoiceOutput, error) {
	if len(in.Audio) == 0 {
		return nil, newError(KindValidation, "audio upload is empty", nil)
	}
	convID, err := resolveConversationID(in.ConversationID)
	if err != nil {
		return nil, err
	}

	text, err := s.stt.Transcribe(ctx, in.Audio, in.Filename)
	if err != nil {
		return nil, newError(KindTranscription, "transcription failed", err)
	}
	if text == "" {
		return nil, newError(KindValidation, "no speech detected", nil)
	}
	log.Info().Str("conversation_id", convID).Str("text", text).Msg("transcribed")

	out, err := s.turn(ctx, turn{
		text:      text,
		code:      lang.Detect(text, ""),
		convID:    convID,
		enableTTS: in.EnableTTS,
		channel:   events.ChannelVoice,
	})
	if err != nil {
		return nil, err
	}
	return &VoiceOutput{ChatOutput: *out, TranscribedText: text}, nil
}

type turn struct {
	text      string
	code      lang.Code
	convID    string
	enableTTS bool
	channel   events.Channel
}

func (s *Service) turn(ctx context.Context, t turn) (*ChatOutput, error) {
	processed := s.norm.Normalize(t.text, t.code)
	log.Debug().
		Str("conversation_id", t.convID).
		Str("lang", t.code.String()).
		Bool("normalized", processed != t.text).
		Msg("language resolved")

	reply, err := s.commitTurn(ctx, t, processed)
	if err != nil {
		return nil, err
	}

	out := &ChatOutput{
		Reply:            reply,
		DetectedLanguage: t.code,
		ConversationID:   t.convID,
	}

	if t.enableTTS {
		// The turn stays committed if synthesis fails.
		audio, err := s.tts.Synthesize(ctx, reply, t.code)
		if err != nil {
			return nil, newError(KindSynthesis, "synthesis failed", err)
		}
		id := audiocache.NewID()
		if err := s.audio.Put(ctx, id, audio); err != nil {
			return nil, newError(KindInternal, "store audio", err)
		}
		out.AudioURL = audiocache.URL(id)
	}

	now := s.now()
	out.Timestamp = unixSeconds(now)

	if err := s.events.PublishTurn(ctx, events.TurnEvent{
		ConversationID: t.convID,
		Channel:        t.channel,
		Language:       t.code.String(),
		Audio:          out.AudioURL != "",
		At:             now,
	}); err != nil {
		log.Warn().Err(err).Str("conversation_id", t.convID).Msg("publish turn event failed")
	}
	return out, nil
}

// commitTurn appends the user text, generates and appends the reply while
// holding the conversation lock.
func (s *Service) commitTurn(ctx context.Context, t turn, processed string) (string, error) {
	unlock := s.locks.Lock(t.convID)
	defer unlock()

	if err := s.convs.Append(ctx, t.convID, chat.RoleUser, t.text); err != nil {
		return "", newError(KindInternal, "store user message", err)
	}

	reply, err := s.gen.Generate(ctx, processed, t.code)
	if err != nil {
		return "", newError(KindGeneration, "generation failed", err)
	}

	if err := s.convs.Append(ctx, t.convID, chat.RoleAssistant, reply); err != nil {
		return "", newError(KindInternal, "store assistant message", err)
	}
	return reply, nil
}

func (s *Service) History(ctx context.Context, id string) ([]chat.Message, error) {
	msgs, err := s.convs.Get(ctx, id)
	if errors.Is(err, chat.ErrNotFound) {
		return nil, newError(KindNotFound, "Conversation not found", nil)
	}
	if err != nil {
		return nil, newError(KindInternal, "load conversation", err)
	}
	return msgs, nil
}

func (s *Service) DeleteConversation(ctx context.Context, id string) error {
	err := s.convs.Delete(ctx, id)
	if errors.Is(err, chat.ErrNotFound) {
		return newError(KindNotFound, "Conversation not found", nil)
	}
	if err != nil {
		return newError(KindInternal, "delete conversation", err)
	}
	return nil
}

func (s *Service) Audio(ctx context.Context, id string) ([]byte, error) {
	b, err := s.audio.Get(ctx, id)
	if errors.Is(err, audiocache.ErrNotFound) {
		return nil, newError(KindNotFound, "Audio not found or expired", nil)
	}
	if err != nil {
		return nil, newError(KindInternal, "load audio", err)
	}
	return b, nil
}

// Shutdown clears both stores and closes the event publisher.
func (s *Service) Shutdown(ctx context.Context) error {
	return errors.Join(
		s.audio.Reset(ctx),
		s.convs.Reset(ctx),
		s.events.Close(),
	)
}

func resolveConversationID(id string) (string, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return uuid.NewString(), nil
	}
	if len(id) > chat.MaxIDLength {
		return "", newError(KindValidation, "conversation_id is too long", nil)
	}
	return id, nil
}

func unixSeconds(t time.Time) float64 {
	return float64(t.UnixNano()) / float64(time.Second)
}
