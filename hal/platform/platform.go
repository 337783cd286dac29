// Package platform binds hal interfaces to a concrete target.
// Exactly one board_*.go file is compiled per build.
package platform

import (
	"rgbknob/errcode"
	"rgbknob/x/fmtx"
)

const op = "platform"

func unknownPin(role string, n int) error {
	return &errcode.E{C: errcode.UnknownPin, Op: op, Msg: fmtx.Sprintf("%s pin %d", role, n)}
}

func wrongBoard(want, have string) error {
	return &errcode.E{C: errcode.UnknownBoard, Op: op, Msg: fmtx.Sprintf("config for %s on %s build", want, have)}
}
