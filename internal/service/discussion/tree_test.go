package discussion

import (
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/buildhub-dev/buildhub-backend/internal/domain"
)

func mkComment(id uuid.UUID, parent *uuid.UUID, at time.Time) domain.Comment {
	return domain.Comment{
		ID:              id,
		IdeaID:          uuid.Nil,
		ParentCommentID: parent,
		Content:         "c",
		CreatedAt:       at,
	}
}

func TestBuildTree_Forest(t *testing.T) {
	t.Parallel()

	base := time.Now()
	a := uuid.New()
	b := uuid.New()
	aReply := uuid.New()
	aNested := uuid.New()

	comments := []domain.Comment{
		mkComment(a, nil, base),
		mkComment(b, nil, base.Add(time.Second)),
		mkComment(aReply, &a, base.Add(2*time.Second)),
		mkComment(aNested, &aReply, base.Add(3*time.Second)),
	}

	roots := buildTree(comments)

	if len(roots) != 2 {
		t.Fatalf("roots: got %d, want 2", len(roots))
	}
	if roots[0].ID != a || roots[1].ID != b {
		t.Error("roots must keep creation order")
	}
	if len(roots[0].Replies) != 1 || roots[0].Replies[0].ID != aReply {
		t.Fatalf("reply not attached to its parent")
	}
	if len(roots[0].Replies[0].Replies) != 1 || roots[0].Replies[0].Replies[0].ID != aNested {
		t.Error("nested reply not attached")
	}
}

func TestBuildTree_ChildBeforeParentInInput(t *testing.T) {
	t.Parallel()

	// The builder must not depend on parents appearing before children.
	base := time.Now()
	parent := uuid.New()
	child := uuid.New()

	comments := []domain.Comment{
		mkComment(child, &parent, base.Add(time.Second)),
		mkComment(parent, nil, base),
	}

	roots := buildTree(comments)

	if len(roots) != 1 {
		t.Fatalf("roots: got %d, want 1", len(roots))
	}
	if len(roots[0].Replies) != 1 || roots[0].Replies[0].ID != child {
		t.Error("child listed before parent must still attach")
	}
}

func TestBuildTree_OrphanDroppedSilently(t *testing.T) {
	t.Parallel()

	base := time.Now()
	root := uuid.New()
	missingParent := uuid.New()
	orphan := uuid.New()
	orphanChild := uuid.New()

	comments := []domain.Comment{
		mkComment(root, nil, base),
		mkComment(orphan, &missingParent, base.Add(time.Second)),
		mkComment(orphanChild, &orphan, base.Add(2*time.Second)),
	}

	roots := buildTree(comments)

	if len(roots) != 1 || roots[0].ID != root {
		t.Fatalf("only the intact thread must survive, got %d roots", len(roots))
	}
	if len(roots[0].Replies) != 0 {
		t.Error("orphan subtree must not leak into surviving threads")
	}
}

func TestBuildTree_SiblingOrderPreserved(t *testing.T) {
	t.Parallel()

	base := time.Now()
	parent := uuid.New()
	r1 := uuid.New()
	r2 := uuid.New()
	r3 := uuid.New()

	comments := []domain.Comment{
		mkComment(parent, nil, base),
		mkComment(r1, &parent, base.Add(1*time.Second)),
		mkComment(r2, &parent, base.Add(2*time.Second)),
		mkComment(r3, &parent, base.Add(3*time.Second)),
	}

	roots := buildTree(comments)

	replies := roots[0].Replies
	if len(replies) != 3 {
		t.Fatalf("replies: got %d, want 3", len(replies))
	}
	if replies[0].ID != r1 || replies[1].ID != r2 || replies[2].ID != r3 {
		t.Error("sibling replies must keep creation order")
	}
}

func TestBuildTree_Empty(t *testing.T) {
	t.Parallel()

	roots := buildTree(nil)
	if roots == nil {
		t.Error("expected empty slice, got nil")
	}
	if len(roots) != 0 {
		t.Errorf("got %d roots, want 0", len(roots))
	}
}

func TestBuildTree_DepthBeyondRenderCutoffKept(t *testing.T) {
	t.Parallel()

	// Nesting deeper than MaxRenderDepth is stored and returned; the cutoff
	// is advisory for renderers, not a storage limit.
	base := time.Now()
	ids := make([]uuid.UUID, domain.MaxRenderDepth+3)
	comments := make([]domain.Comment, 0, len(ids))
	for i := range ids {
		ids[i] = uuid.New()
		var parent *uuid.UUID
		if i > 0 {
			parent = &ids[i-1]
		}
		comments = append(comments, mkComment(ids[i], parent, base.Add(time.Duration(i)*time.Second)))
	}

	roots := buildTree(comments)

	depth := 0
	node := roots[0]
	for len(node.Replies) > 0 {
		node = node.Replies[0]
		depth++
	}
	if depth != len(ids)-1 {
		t.Errorf("chain depth: got %d, want %d", depth, len(ids)-1)
	}
}
