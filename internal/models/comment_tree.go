package models

// CommentNode wraps a comment with its ordered replies for nested rendering.
type CommentNode struct {
	Comment
	Children []*CommentNode `json:"children"`
}

// BuildCommentForest reshapes a flat list of one post's comments into a
// forest of nested nodes. The input must be sorted ascending by creation
// time; both the root sequence and every Children slice preserve that
// order. Two passes, O(n) with an id lookup built once per call.
//
// A comment whose parent is not present in the input (the parent was
// deleted or filtered out) is promoted to a root rather than dropped, so
// every comment stays reachable from the forest.
func BuildCommentForest(comments []*Comment) []*CommentNode {
	nodes := make(map[uint]*CommentNode, len(comments))
	for _, c := range comments {
		nodes[c.ID] = &CommentNode{Comment: *c, Children: []*CommentNode{}}
	}

	roots := make([]*CommentNode, 0, len(comments))
	for _, c := range comments {
		node := nodes[c.ID]
		if c.ParentID == nil {
			roots = append(roots, node)
			continue
		}
		parent, ok := nodes[*c.ParentID]
		if !ok {
			roots = append(roots, node)
			continue
		}
		parent.Children = append(parent.Children, node)
	}
	return roots
}
