package tracking_test

import (
	"context"
	"encoding/base64"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quotable/leadintel/internal/domain"
	"github.com/quotable/leadintel/internal/tracking"
)

var signer = tracking.NewSigner([]byte("test-tracking-secret-0123"))

func TestEncodeDecode(t *testing.T) {
	data := signer.Encode("campaign-1", "lead-7", "mock-1-abc", "https://quotable.test/a?x=1|2")
	c, l, m, target, err := signer.Decode(data)
	require.NoError(t, err)
	assert.Equal(t, "campaign-1", c)
	assert.Equal(t, "lead-7", l)
	assert.Equal(t, "mock-1-abc", m)
	assert.Equal(t, "https://quotable.test/a?x=1|2", target)

	_, _, _, target, err = signer.Decode(signer.Encode("campaign-1", "lead-7", "m", ""))
	require.NoError(t, err)
	assert.Empty(t, target)
}

func TestDecodeMalformed(t *testing.T) {
	sign := func(payload string) string {
		// Reuse a real tag so only the payload shape is wrong.
		_, tag, _ := strings.Cut(signer.Encode("c", "l", "m", ""), ".")
		return base64.RawURLEncoding.EncodeToString([]byte(payload)) + "." + tag
	}
	for _, data := range []string{"%%%", "no-dot", "%%%.abc"} {
		_, _, _, _, err := signer.Decode(data)
		assert.ErrorIs(t, err, tracking.ErrMalformed, data)
	}
	for _, data := range []string{sign("only|two"), sign("|lead|msg")} {
		_, _, _, _, err := signer.Decode(data)
		assert.Error(t, err, data)
	}
}

func TestDecodeRejectsForgedTokens(t *testing.T) {
	genuine := signer.Encode("campaign-1", "lead-1", "m1", "https://quotable.test/demo")
	payload, tag, _ := strings.Cut(genuine, ".")

	forgedPayload := base64.RawURLEncoding.EncodeToString([]byte("campaign-1|lead-1|m1|https://evil.test/"))
	other := tracking.NewSigner([]byte("some-other-secret-abcdef"))

	for name, token := range map[string]string{
		"swapped target":  forgedPayload + "." + tag,
		"unsigned":        payload + ".",
		"foreign key":     other.Encode("campaign-1", "lead-1", "m1", "https://quotable.test/demo"),
		"truncated tag":   payload + "." + tag[:len(tag)-4],
		"legacy unsigned": base64.URLEncoding.EncodeToString([]byte("campaign-1|lead-1|m1|https://evil.test/")),
	} {
		t.Run(name, func(t *testing.T) {
			_, _, _, _, err := signer.Decode(token)
			assert.Error(t, err)
		})
	}

	_, _, _, _, err := signer.Decode(forgedPayload + "." + tag)
	assert.ErrorIs(t, err, tracking.ErrBadSignature)
}

func TestRandomSignerKeysDiffer(t *testing.T) {
	a, err := tracking.RandomSigner()
	require.NoError(t, err)
	b, err := tracking.RandomSigner()
	require.NoError(t, err)

	token := a.Encode("c", "l", "m", "")
	_, _, _, _, err = a.Decode(token)
	require.NoError(t, err)
	_, _, _, _, err = b.Decode(token)
	assert.ErrorIs(t, err, tracking.ErrBadSignature)
}

func TestLinks(t *testing.T) {
	links := tracking.Links{BaseURL: "https://t.quotable.test/", Signer: signer}
	open := links.Open("c", "l", "m")
	assert.Equal(t, "https://t.quotable.test/track/open/"+signer.Encode("c", "l", "m", ""), open)
}

func newServer(rec tracking.Recorder) http.Handler {
	mux := http.NewServeMux()
	mux.Handle("/track/", http.StripPrefix("/track", tracking.NewHandler(rec, signer).Routes()))
	return mux
}

func TestOpenServesPixelAndCounts(t *testing.T) {
	rec := tracking.NewMemoryRecorder(0)
	srv := newServer(rec)

	for i := 0; i < 2; i++ {
		w := httptest.NewRecorder()
		srv.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/track/open/"+signer.Encode("campaign-1", "lead-1", "m1", ""), nil))
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "image/gif", w.Header().Get("Content-Type"))
		assert.Equal(t, "no-cache, no-store, must-revalidate", w.Header().Get("Cache-Control"))
	}

	counts, err := rec.Counts(context.Background(), "campaign-1")
	require.NoError(t, err)
	assert.Equal(t, domain.TrackingCounts{CampaignID: "campaign-1", Opens: 2}, counts)
}

func TestOpenWithBadDataStillServesPixel(t *testing.T) {
	rec := tracking.NewMemoryRecorder(0)
	w := httptest.NewRecorder()
	newServer(rec).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/track/open/not-base64!", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "image/gif", w.Header().Get("Content-Type"))
}

func TestClickRedirects(t *testing.T) {
	rec := tracking.NewMemoryRecorder(0)
	srv := newServer(rec)

	w := httptest.NewRecorder()
	data := signer.Encode("campaign-2", "lead-1", "m1", "https://quotable.test/demo")
	srv.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/track/click/"+data, nil))

	assert.Equal(t, http.StatusTemporaryRedirect, w.Code)
	assert.Equal(t, "https://quotable.test/demo", w.Header().Get("Location"))
	counts, err := rec.Counts(context.Background(), "campaign-2")
	require.NoError(t, err)
	assert.Equal(t, int64(1), counts.Clicks)
}

func TestClickRejectsTamperedToken(t *testing.T) {
	rec := tracking.NewMemoryRecorder(0)
	srv := newServer(rec)

	genuine := signer.Encode("campaign-2", "lead-1", "m1", "https://quotable.test/demo")
	_, tag, _ := strings.Cut(genuine, ".")
	tampered := base64.RawURLEncoding.EncodeToString([]byte("campaign-2|lead-1|m1|https://evil.test/")) + "." + tag

	w := httptest.NewRecorder()
	srv.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/track/click/"+tampered, nil))
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Empty(t, w.Header().Get("Location"))

	// A forged open still gets the pixel but is not counted.
	w = httptest.NewRecorder()
	srv.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/track/open/"+tampered, nil))
	assert.Equal(t, http.StatusOK, w.Code)

	counts, err := rec.Counts(context.Background(), "campaign-2")
	require.NoError(t, err)
	assert.Zero(t, counts.Clicks)
	assert.Zero(t, counts.Opens)
}

func TestClickRejectsUnsafeTargets(t *testing.T) {
	rec := tracking.NewMemoryRecorder(0)
	srv := newServer(rec)

	for _, target := range []string{"", "javascript:alert(1)", "/relative", "ftp://files.test/x"} {
		w := httptest.NewRecorder()
		data := signer.Encode("campaign-2", "lead-1", "m1", target)
		srv.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/track/click/"+data, nil))
		assert.Equal(t, http.StatusBadRequest, w.Code, target)
	}
	counts, err := rec.Counts(context.Background(), "campaign-2")
	require.NoError(t, err)
	assert.Zero(t, counts.Clicks)
}

func TestRedisRecorder(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })
	rec := tracking.NewRedisRecorder(client, "leadintel:")
	ctx := context.Background()

	counts, err := rec.Counts(ctx, "campaign-1")
	require.NoError(t, err)
	assert.Equal(t, domain.TrackingCounts{CampaignID: "campaign-1"}, counts)

	require.NoError(t, rec.Record(ctx, tracking.Event{Type: tracking.EventOpen, CampaignID: "campaign-1"}))
	require.NoError(t, rec.Record(ctx, tracking.Event{Type: tracking.EventOpen, CampaignID: "campaign-1"}))
	require.NoError(t, rec.Record(ctx, tracking.Event{Type: tracking.EventClick, CampaignID: "campaign-1"}))

	counts, err = rec.Counts(ctx, "campaign-1")
	require.NoError(t, err)
	assert.Equal(t, domain.TrackingCounts{CampaignID: "campaign-1", Opens: 2, Clicks: 1}, counts)
	assert.Equal(t, "2", mr.HGet("leadintel:tracking:campaign-1", "opens"))
}
