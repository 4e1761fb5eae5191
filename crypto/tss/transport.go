//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

package tss

import (
	"bufio"
	"encoding/binary"
	"io"
	"net"
)

// IO implements the framed message transport used between the two
// peers of a threshold signature session. It replaces the
// OT-protocol IO of the original two-party MPC transport with a
// plain length-prefixed stream, since the signing messages
// exchanged here carry no oblivious-transfer payloads.
type IO interface {
	SendData(data []byte) error
	ReceiveData() ([]byte, error)
	Flush() error
}

type connIO struct {
	conn net.Conn
	r    *bufio.Reader
	w    *bufio.Writer
}

// NewConnIO wraps conn into an IO that frames each message with a
// 32-bit big-endian length prefix.
func NewConnIO(conn net.Conn) IO {
	return &connIO{
		conn: conn,
		r:    bufio.NewReader(conn),
		w:    bufio.NewWriter(conn),
	}
}

func (c *connIO) SendData(data []byte) error {
	var hdr [4]byte
	binary.BigEndian.PutUint32(hdr[:], uint32(len(data)))
	if _, err := c.w.Write(hdr[:]); err != nil {
		return err
	}
	_, err := c.w.Write(data)
	return err
}

func (c *connIO) Flush() error {
	return c.w.Flush()
}

func (c *connIO) ReceiveData() ([]byte, error) {
	var hdr [4]byte
	if _, err := io.ReadFull(c.r, hdr[:]); err != nil {
		return nil, err
	}
	l := binary.BigEndian.Uint32(hdr[:])
	data := make([]byte, l)
	if _, err := io.ReadFull(c.r, data); err != nil {
		return nil, err
	}
	return data, nil
}
