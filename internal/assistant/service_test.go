package assistant

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/janseva/assistant/internal/audiocache"
	"github.com/janseva/assistant/internal/chat"
	"github.com/janseva/assistant/internal/events"
	"github.com/janseva/assistant/internal/lang"
)

type stubGenerator struct {
	mu    sync.Mutex
	calls []string
	codes []lang.Code
	reply func(text string) string
	err   error
}

func (g *stubGenerator) Generate(_ context.Context, text string, code lang.Code) (string, error) {
	g.mu.Lock()
	g.calls = append(g.calls, text)
	g.codes = append(g.codes, code)
	g.mu.Unlock()
	if g.err != nil {
		return "", g.err
	}
	if g.reply != nil {
		return g.reply(text), nil
	}
	return "reply to " + text, nil
}

type stubTranscriber struct {
	text string
	err  error
}

func (s stubTranscriber) Transcribe(context.Context, []byte, string) (string, error) {
	return s.text, s.err
}

type stubSynth struct {
	err   error
	calls int
}

func (s *stubSynth) Synthesize(_ context.Context, text string, _ lang.Code) ([]byte, error) {
	s.calls++
	if s.err != nil {
		return nil, s.err
	}
	return []byte("mp3:" + text), nil
}

type upperNormalizer struct{}

func (upperNormalizer) Normalize(text string, code lang.Code) string {
	if code.NativeScript() {
		return "[" + text + "]"
	}
	return text
}

type recordingPublisher struct {
	mu     sync.Mutex
	events []events.TurnEvent
	closed bool
}

func (p *recordingPublisher) PublishTurn(_ context.Context, ev events.TurnEvent) error {
	p.mu.Lock()
	p.events = append(p.events, ev)
	p.mu.Unlock()
	return nil
}

func (p *recordingPublisher) Close() error {
	p.closed = true
	return nil
}

type fixture struct {
	svc   *Service
	gen   *stubGenerator
	synth *stubSynth
	convs *chat.MemoryStore
	audio *audiocache.MemoryCache
	pub   *recordingPublisher
}

func newFixture(t *testing.T, stt stubTranscriber) *fixture {
	t.Helper()
	f := &fixture{
		gen:   &stubGenerator{},
		synth: &stubSynth{},
		convs: chat.NewMemoryStore(),
		audio: audiocache.NewMemoryCache(audiocache.DefaultTTL),
		pub:   &recordingPublisher{},
	}
	svc, err := NewService(Deps{
		Generator:     f.gen,
		Transcriber:   stt,
		Synthesizer:   f.synth,
		Normalizer:    upperNormalizer{},
		Conversations: f.convs,
		Audio:         f.audio,
		Events:        f.pub,
		Now:           func() time.Time { return time.Unix(1_700_000_000, 500_000_000) },
	})
	require.NoError(t, err)
	f.svc = svc
	return f
}

func TestChat_NewConversation(t *testing.T) {
	f := newFixture(t, stubTranscriber{})
	ctx := context.Background()

	out, err := f.svc.Chat(ctx, ChatInput{Message: "  What is Shravan Bal?  "})
	require.NoError(t, err)
	require.Equal(t, lang.English, out.DetectedLanguage)
	require.Equal(t, "reply to What is Shravan Bal?", out.Reply)
	require.Empty(t, out.AudioURL)
	require.InDelta(t, 1_700_000_000.5, out.Timestamp, 1e-6)

	_, err = uuid.Parse(out.ConversationID)
	require.NoError(t, err)

	msgs, err := f.svc.History(ctx, out.ConversationID)
	require.NoError(t, err)
	require.Equal(t, []chat.Message{
		{Role: chat.RoleUser, Content: "What is Shravan Bal?"},
		{Role: chat.RoleAssistant, Content: "reply to What is Shravan Bal?"},
	}, msgs)

	require.Len(t, f.pub.events, 1)
	require.Equal(t, events.ChannelText, f.pub.events[0].Channel)
	require.False(t, f.pub.events[0].Audio)
}

func TestChat_StoresRawAndGeneratesNormalized(t *testing.T) {
	f := newFixture(t, stubTranscriber{})
	ctx := context.Background()

	out, err := f.svc.Chat(ctx, ChatInput{Message: "shetkari yojana kay aahe", ConversationID: "c1"})
	require.NoError(t, err)
	require.Equal(t, lang.Marathi, out.DetectedLanguage)
	require.Equal(t, "c1", out.ConversationID)
	require.Equal(t, []string{"[shetkari yojana kay aahe]"}, f.gen.calls)

	msgs, err := f.svc.History(ctx, "c1")
	require.NoError(t, err)
	require.Equal(t, "shetkari yojana kay aahe", msgs[0].Content)
}

func TestChat_LanguageOverride(t *testing.T) {
	f := newFixture(t, stubTranscriber{})
	out, err := f.svc.Chat(context.Background(), ChatInput{Message: "tell me about schemes", Language: "hi"})
	require.NoError(t, err)
	require.Equal(t, lang.Hindi, out.DetectedLanguage)

	out, err = f.svc.Chat(context.Background(), ChatInput{Message: "tell me about schemes", Language: "fr"})
	require.NoError(t, err)
	require.Equal(t, lang.English, out.DetectedLanguage)
}

func TestChat_Validation(t *testing.T) {
	f := newFixture(t, stubTranscriber{})
	ctx := context.Background()

	for _, in := range []ChatInput{
		{Message: "   "},
		{Message: strings.Repeat("अ", MaxMessageRunes+1)},
		{Message: "ok", ConversationID: strings.Repeat("x", chat.MaxIDLength+1)},
	} {
		_, err := f.svc.Chat(ctx, in)
		require.Equal(t, KindValidation, KindOf(err))
	}
	require.Empty(t, f.gen.calls)

	_, err := f.svc.Chat(ctx, ChatInput{Message: strings.Repeat("अ", MaxMessageRunes)})
	require.NoError(t, err)
}

func TestChat_WithAudio(t *testing.T) {
	f := newFixture(t, stubTranscriber{})
	ctx := context.Background()

	out, err := f.svc.Chat(ctx, ChatInput{Message: "hello", EnableTTS: true})
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(out.AudioURL, "/audio/"))

	b, err := f.svc.Audio(ctx, strings.TrimPrefix(out.AudioURL, "/audio/"))
	require.NoError(t, err)
	require.Equal(t, "mp3:reply to hello", string(b))
	require.True(t, f.pub.events[0].Audio)
}

func TestChat_GenerationFailure(t *testing.T) {
	f := newFixture(t, stubTranscriber{})
	f.gen.err = errors.New("groq: status 503")

	_, err := f.svc.Chat(context.Background(), ChatInput{Message: "hello", ConversationID: "c"})
	require.Equal(t, KindGeneration, KindOf(err))
	var ae *Error
	require.True(t, errors.As(err, &ae))
	require.Contains(t, ae.Detail(), "503")
	require.Empty(t, f.pub.events)
}

func TestChat_SynthesisFailureKeepsTurn(t *testing.T) {
	f := newFixture(t, stubTranscriber{})
	f.synth.err = errors.New("tts down")
	ctx := context.Background()

	_, err := f.svc.Chat(ctx, ChatInput{Message: "hello", ConversationID: "c", EnableTTS: true})
	require.Equal(t, KindSynthesis, KindOf(err))

	msgs, err := f.svc.History(ctx, "c")
	require.NoError(t, err)
	require.Len(t, msgs, 2)
	require.Zero(t, f.audio.Len())
}

func TestVoiceChat(t *testing.T) {
	f := newFixture(t, stubTranscriber{text: "शेतकरी योजना काय आहे"})
	ctx := context.Background()

	out, err := f.svc.VoiceChat(ctx, VoiceInput{Audio: []byte{1}, Filename: "a.webm", EnableTTS: true})
	require.NoError(t, err)
	require.Equal(t, "शेतकरी योजना काय आहे", out.TranscribedText)
	require.Equal(t, lang.Marathi, out.DetectedLanguage)
	require.NotEmpty(t, out.AudioURL)
	require.Equal(t, events.ChannelVoice, f.pub.events[0].Channel)

	msgs, err := f.svc.History(ctx, out.ConversationID)
	require.NoError(t, err)
	require.Equal(t, "शेतकरी योजना काय आहे", msgs[0].Content)
}

func TestVoiceChat_Failures(t *testing.T) {
	ctx := context.Background()

	f := newFixture(t, stubTranscriber{err: errors.New("whisper: 400")})
	_, err := f.svc.VoiceChat(ctx, VoiceInput{Audio: []byte{1}})
	require.Equal(t, KindTranscription, KindOf(err))

	f = newFixture(t, stubTranscriber{text: ""})
	_, err = f.svc.VoiceChat(ctx, VoiceInput{Audio: []byte{1}})
	require.Equal(t, KindValidation, KindOf(err))

	_, err = f.svc.VoiceChat(ctx, VoiceInput{})
	require.Equal(t, KindValidation, KindOf(err))
	require.Empty(t, f.gen.calls)
}

func TestConcurrentTurnsKeepPairsTogether(t *testing.T) {
	f := newFixture(t, stubTranscriber{})
	f.gen.reply = func(text string) string {
		time.Sleep(time.Millisecond)
		return "a:" + text
	}
	ctx := context.Background()

	const n = 20
	var wg sync.WaitGroup
	wg.Add(n)
	for i := 0; i < n; i++ {
		go func(i int) {
			defer wg.Done()
			_, err := f.svc.Chat(ctx, ChatInput{Message: fmt.Sprintf("question %d", i), ConversationID: "shared"})
			assert.NoError(t, err)
		}(i)
	}
	wg.Wait()

	msgs, err := f.svc.History(ctx, "shared")
	require.NoError(t, err)
	require.Len(t, msgs, 2*n)
	for i := 0; i < len(msgs); i += 2 {
		require.Equal(t, chat.RoleUser, msgs[i].Role)
		require.Equal(t, "a:"+msgs[i].Content, msgs[i+1].Content)
	}
}

func TestHistoryDeleteAudioNotFound(t *testing.T) {
	f := newFixture(t, stubTranscriber{})
	ctx := context.Background()

	_, err := f.svc.History(ctx, "nope")
	require.Equal(t, KindNotFound, KindOf(err))
	require.Equal(t, KindNotFound, KindOf(f.svc.DeleteConversation(ctx, "nope")))
	_, err = f.svc.Audio(ctx, "nope")
	require.Equal(t, KindNotFound, KindOf(err))

	out, err := f.svc.Chat(ctx, ChatInput{Message: "hi"})
	require.NoError(t, err)
	require.NoError(t, f.svc.DeleteConversation(ctx, out.ConversationID))
	_, err = f.svc.History(ctx, out.ConversationID)
	require.Equal(t, KindNotFound, KindOf(err))
}

func TestShutdownResetsStores(t *testing.T) {
	f := newFixture(t, stubTranscriber{})
	ctx := context.Background()

	out, err := f.svc.Chat(ctx, ChatInput{Message: "hi", EnableTTS: true})
	require.NoError(t, err)
	require.NoError(t, f.svc.Shutdown(ctx))

	_, err = f.svc.History(ctx, out.ConversationID)
	require.Equal(t, KindNotFound, KindOf(err))
	require.Zero(t, f.audio.Len())
	require.True(t, f.pub.closed)
}

func TestNewService_RequiresDeps(t *testing.T) {
	_, err := NewService(Deps{})
	require.Error(t, err)
}
