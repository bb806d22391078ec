package tuitest

import (
	"bytes"
	"io"
)

// reply pairs a terminal query the program may emit with the answer a real
// terminal would send back.
type reply struct {
	query  []byte
	answer []byte
}

var replies = []reply{
	// cursor position
	{[]byte("\x1b[6n"), []byte("\x1b[1;1R")},
	// foreground and background color, BEL and ST terminated
	{[]byte("\x1b]10;?\x07"), []byte("\x1b]10;rgb:ffff/ffff/ffff\x07")},
	{[]byte("\x1b]10;?\x1b\\"), []byte("\x1b]10;rgb:ffff/ffff/ffff\x1b\\")},
	{[]byte("\x1b]11;?\x07"), []byte("\x1b]11;rgb:0000/0000/0000\x07")},
	{[]byte("\x1b]11;?\x1b\\"), []byte("\x1b]11;rgb:0000/0000/0000\x1b\\")},
}

// responder answers terminal queries so that programs probing the terminal
// do not block waiting on the pty.
type responder struct {
	w    io.Writer
	tail []byte
}

func newResponder(w io.Writer) *responder {
	return &responder{w: w, tail: make([]byte, 0, 128)}
}

func (r *responder) Feed(chunk []byte) {
	r.tail = append(r.tail, chunk...)
	for r.answerOne() {
	}
	// A query may be split across reads.
	if len(r.tail) > 256 {
		r.tail = append(r.tail[:0], r.tail[len(r.tail)-64:]...)
	}
}

func (r *responder) answerOne() bool {
	first, at := -1, -1
	for i, rp := range replies {
		if idx := bytes.Index(r.tail, rp.query); idx >= 0 && (at < 0 || idx < at) {
			first, at = i, idx
		}
	}
	if first < 0 {
		return false
	}
	r.tail = r.tail[at+len(replies[first].query):]
	_, _ = r.w.Write(replies[first].answer)
	return true
}
