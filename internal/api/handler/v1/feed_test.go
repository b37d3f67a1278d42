package v1

import (
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/vietanh2810/course-portal-api/internal/domain"
)

func TestMatchOrigin(t *testing.T) {
	cases := []struct {
		pattern, origin string
		want            bool
	}{
		{"http://localhost:5173", "http://localhost:5173", true},
		{"http://localhost:5173", "http://localhost:3000", false},
		{"https://*.netlify.app", "https://portal.netlify.app", true},
		{"https://*.netlify.app", "https://portal.netlify.app.evil.com", false},
		{"https://*.netlify.app", "http://portal.netlify.app", false},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, matchOrigin(c.pattern, c.origin), "%s vs %s", c.pattern, c.origin)
	}
}

func TestOriginChecker(t *testing.T) {
	check := originChecker([]string{"https://*.netlify.app"})

	req := httptest.NewRequest("GET", "/api/admin/feed", nil)
	assert.True(t, check(req), "requests without Origin are not browser cross-site requests")

	req.Header.Set("Origin", "https://admin.netlify.app")
	assert.True(t, check(req))

	req.Header.Set("Origin", "https://evil.example.com")
	assert.False(t, check(req))

	assert.True(t, originChecker(nil)(req))
}

func TestFeedHub_NotifyDoesNotBlockWithoutRunner(t *testing.T) {
	h := NewFeedHub(nil)
	for i := 0; i < 1000; i++ {
		h.Notify(domain.FeedEvent{Kind: domain.FeedKindTourRegistration, Action: domain.FeedCreated, ID: uint(i)})
	}
	assert.Equal(t, 0, h.Clients())
}
