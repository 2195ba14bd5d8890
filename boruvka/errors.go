package boruvka

import "errors"

// ErrDisconnected indicates CalculateMST's round-cap safety valve
// tripped before the graph's node count reached 1, which only happens
// when the input was not actually connected.
var ErrDisconnected = errors.New("boruvka: graph is disconnected")
