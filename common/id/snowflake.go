package id

import (
	"sync"

	"github.com/bwmarrin/snowflake"
)

// Node IDs per process kind. Two processes sharing a node ID can mint
// colliding IDs within the same millisecond.
const (
	NodeServer int64 = 1
	NodeWorker int64 = 2
	NodeCLI    int64 = 3
)

var (
	node *snowflake.Node
	once sync.Once
)

// Init initializes the Snowflake node with the given node ID.
func Init(nodeID int64) error {
	var err error
	once.Do(func() {
		node, err = snowflake.NewNode(nodeID)
	})
	return err
}

// New generates a time-ordered int64 ID. Init must have been called.
func New() int64 {
	return node.Generate().Int64()
}
