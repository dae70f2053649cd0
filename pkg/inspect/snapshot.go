// Package inspect serves the bound output tree over HTTP for tooling:
// a JSON or msgpack snapshot of the current tree, plus an endpoint
// that feeds handler ids into the renderer.
package inspect

import (
	"sync/atomic"

	"github.com/go-weft/weft/pkg/dom"
)

// snapshotCounter provides monotonic snapshot ids.
var snapshotCounter atomic.Uint64

// TreeSnapshot captures the bound output tree at one moment.
type TreeSnapshot struct {
	SnapshotID uint64        `json:"snapshotId" msgpack:"snapshot_id"`
	Root       *NodeSnapshot `json:"root" msgpack:"root"`
}

// NodeSnapshot holds the serialized form of one bound node.
type NodeSnapshot struct {
	Kind     string            `json:"kind" msgpack:"kind"`
	Attrs    map[string]string `json:"attrs,omitempty" msgpack:"attrs,omitempty"`
	Text     string            `json:"text,omitempty" msgpack:"text,omitempty"`
	ActionID uint64            `json:"actionId,omitempty" msgpack:"action_id,omitempty"`
	Children []*NodeSnapshot   `json:"children,omitempty" msgpack:"children,omitempty"`
}

// maxTreeDepth limits recursion to prevent stack overflow from
// malformed trees.
const maxTreeDepth = 500

// Snapshot serializes a bound subtree. A nil root yields a snapshot
// with a nil root, which callers should treat as "nothing mounted".
func Snapshot(root *dom.Node) *TreeSnapshot {
	return &TreeSnapshot{
		SnapshotID: snapshotCounter.Add(1),
		Root:       snapshotNode(root, 0),
	}
}

func snapshotNode(node *dom.Node, depth int) *NodeSnapshot {
	if node == nil || depth > maxTreeDepth {
		return nil
	}
	snap := &NodeSnapshot{
		Kind:     node.Kind.String(),
		Attrs:    node.Attrs,
		Text:     node.Text,
		ActionID: node.ActionID,
	}
	for _, child := range node.Children {
		if cs := snapshotNode(child, depth+1); cs != nil {
			snap.Children = append(snap.Children, cs)
		}
	}
	return snap
}
