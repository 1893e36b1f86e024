//go:build race

package opt

// Race_ under the race detector, disable TSO fast paths and use
// conservative atomic loads/stores
const Race_ = true
