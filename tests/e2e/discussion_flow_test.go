//go:build e2e

package e2e_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/buildhub-dev/buildhub-backend/internal/adapter/postgres/testhelper"
)

// TestE2E_Discussion_ThreadLifecycle walks the full discussion flow: a
// top-level comment bumps the idea's comment counter, a reply does not,
// and deleting the thread removes the reply and restores the counter.
func TestE2E_Discussion_ThreadLifecycle(t *testing.T) {
	ts := setupTestServer(t)

	idea := testhelper.SeedIdea(t, ts.Pool, testhelper.FreeTier())
	token, _ := seedUserAndToken(t, ts)

	// 1. Top-level comment.
	resp := restRequest(t, ts, http.MethodPost, "/api/v1/ideas/"+idea.ID.String()+"/comments", token,
		map[string]any{"content": "Great idea, starting this weekend."})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	top := decodeBody(t, resp)
	topID := top["id"].(string)
	assert.Nil(t, top["parentCommentId"])

	// Counter went up by one.
	resp = restRequest(t, ts, http.MethodGet, "/api/v1/ideas/"+idea.ID.String(), token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	detail := decodeBody(t, resp)["idea"].(map[string]any)
	assert.Equal(t, float64(1), detail["commentCount"])

	// 2. Reply: stored, but the counter does not move.
	resp = restRequest(t, ts, http.MethodPost, "/api/v1/ideas/"+idea.ID.String()+"/comments", token,
		map[string]any{"content": "Same here.", "parentCommentId": topID})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	reply := decodeBody(t, resp)
	parent := jsonString(reply, "parentCommentId")
	require.NotNil(t, parent)
	assert.Equal(t, topID, *parent)

	resp = restRequest(t, ts, http.MethodGet, "/api/v1/ideas/"+idea.ID.String(), token, nil)
	detail = decodeBody(t, resp)["idea"].(map[string]any)
	assert.Equal(t, float64(1), detail["commentCount"], "replies do not bump the comment counter")

	// 3. Listing returns one thread with the reply nested.
	resp = restRequest(t, ts, http.MethodGet, "/api/v1/ideas/"+idea.ID.String()+"/comments", "", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	discussion := decodeBody(t, resp)
	threads := discussion["threads"].([]any)
	require.Len(t, threads, 1)
	assert.Equal(t, float64(2), discussion["total"])

	thread := threads[0].(map[string]any)
	replies := thread["replies"].([]any)
	require.Len(t, replies, 1)

	// 4. Deleting the top-level comment cascades to the reply.
	resp = restRequest(t, ts, http.MethodDelete, "/api/v1/comments/"+topID, token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	deleted := decodeBody(t, resp)
	assert.Equal(t, float64(2), deleted["deleted"])
	assert.Equal(t, float64(1), deleted["topLevelRemoved"])

	resp = restRequest(t, ts, http.MethodGet, "/api/v1/ideas/"+idea.ID.String()+"/comments", "", nil)
	discussion = decodeBody(t, resp)
	assert.Empty(t, discussion["threads"])

	resp = restRequest(t, ts, http.MethodGet, "/api/v1/ideas/"+idea.ID.String(), token, nil)
	detail = decodeBody(t, resp)["idea"].(map[string]any)
	assert.Equal(t, float64(0), detail["commentCount"])
}

// TestE2E_Discussion_GuestCannotComment verifies commenting requires auth
// while reading the discussion does not.
func TestE2E_Discussion_GuestCannotComment(t *testing.T) {
	ts := setupTestServer(t)

	idea := testhelper.SeedIdea(t, ts.Pool, testhelper.FreeTier())

	resp := restRequest(t, ts, http.MethodPost, "/api/v1/ideas/"+idea.ID.String()+"/comments", "",
		map[string]any{"content": "drive-by"})
	resp.Body.Close()
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	resp = restRequest(t, ts, http.MethodGet, "/api/v1/ideas/"+idea.ID.String()+"/comments", "", nil)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

// TestE2E_Discussion_AuthorOnlyEdit verifies a comment can be edited by its
// author and by nobody else.
func TestE2E_Discussion_AuthorOnlyEdit(t *testing.T) {
	ts := setupTestServer(t)

	idea := testhelper.SeedIdea(t, ts.Pool, testhelper.FreeTier())
	authorToken, authorID := seedUserAndToken(t, ts)
	otherToken, _ := seedUserAndToken(t, ts)

	comment := testhelper.SeedComment(t, ts.Pool, idea.ID, authorID, nil)

	resp := restRequest(t, ts, http.MethodPatch, "/api/v1/comments/"+comment.ID.String(), otherToken,
		map[string]any{"content": "hijacked"})
	resp.Body.Close()
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)

	resp = restRequest(t, ts, http.MethodPatch, "/api/v1/comments/"+comment.ID.String(), authorToken,
		map[string]any{"content": "edited by author"})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	body := decodeBody(t, resp)
	assert.Equal(t, "edited by author", body["content"])
}

// TestE2E_Discussion_FlagComment verifies any authenticated user can flag.
func TestE2E_Discussion_FlagComment(t *testing.T) {
	ts := setupTestServer(t)

	idea := testhelper.SeedIdea(t, ts.Pool, testhelper.FreeTier())
	_, authorID := seedUserAndToken(t, ts)
	otherToken, _ := seedUserAndToken(t, ts)

	comment := testhelper.SeedComment(t, ts.Pool, idea.ID, authorID, nil)

	resp := restRequest(t, ts, http.MethodPost, "/api/v1/comments/"+comment.ID.String()+"/flag", otherToken, nil)
	resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	resp = restRequest(t, ts, http.MethodGet, "/api/v1/ideas/"+idea.ID.String()+"/comments", otherToken, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	threads := decodeBody(t, resp)["threads"].([]any)
	require.Len(t, threads, 1)
	assert.Equal(t, true, threads[0].(map[string]any)["isFlagged"])
}

// jsonString returns a pointer to a string field, or nil when absent.
func jsonString(m map[string]any, key string) *string {
	v, ok := m[key].(string)
	if !ok {
		return nil
	}
	return &v
}
