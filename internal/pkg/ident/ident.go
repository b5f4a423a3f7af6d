// Package ident generates the unique, time-ordered identifiers assigned
// to user records. Ids are snowflake-style: timestamp, node and sequence
// bits packed into an int64, rendered as its decimal string. The
// underlying generator runs off the monotonic clock, so ids keep
// increasing even if the wall clock moves backward.
package ident

import (
	"github.com/bwmarrin/snowflake"
)

type Generator struct {
	node *snowflake.Node
}

// NewGenerator creates a generator for the given node id. Node ids must
// be unique across concurrently running instances (0..1023).
func NewGenerator(nodeID int64) (*Generator, error) {
	node, err := snowflake.NewNode(nodeID)
	if err != nil {
		return nil, err
	}
	return &Generator{node: node}, nil
}

// NextID returns the next identifier. Safe for concurrent use.
func (g *Generator) NextID() string {
	return g.node.Generate().String()
}
