// Copyright (c) 2024 The ltcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package wire

import (
	"encoding/binary"
	"fmt"
	"io"
	"time"

	"github.com/ltcsuite/ltcd/chaincfg/chainhash"
)

// uint32Time represents a unix timestamp encoded with a uint32.  It is
// used as a way to signal the readElement function how to decode a
// timestamp into a Go time.Time since it is otherwise ambiguous.
type uint32Time time.Time

// readElement reads the next sequence of bytes from r using little endian
// depending on the concrete type of element pointed to.
func readElement(r io.Reader, element interface{}) error {
	var buf [4]byte

	switch e := element.(type) {
	case *int32:
		if _, err := io.ReadFull(r, buf[:]); err != nil {
			return err
		}
		*e = int32(binary.LittleEndian.Uint32(buf[:]))
		return nil

	case *uint32:
		if _, err := io.ReadFull(r, buf[:]); err != nil {
			return err
		}
		*e = binary.LittleEndian.Uint32(buf[:])
		return nil

	case *uint32Time:
		if _, err := io.ReadFull(r, buf[:]); err != nil {
			return err
		}
		*e = uint32Time(time.Unix(int64(binary.LittleEndian.Uint32(buf[:])), 0))
		return nil

	case *chainhash.Hash:
		_, err := io.ReadFull(r, e[:])
		return err
	}

	return fmt.Errorf("readElement: unsupported type %T", element)
}

// readElements reads multiple items from r.  It is equivalent to multiple
// calls to readElement.
func readElements(r io.Reader, elements ...interface{}) error {
	for _, element := range elements {
		if err := readElement(r, element); err != nil {
			return err
		}
	}
	return nil
}

// writeElement writes the little endian representation of element to w.
func writeElement(w io.Writer, element interface{}) error {
	var buf [4]byte

	switch e := element.(type) {
	case int32:
		binary.LittleEndian.PutUint32(buf[:], uint32(e))
		_, err := w.Write(buf[:])
		return err

	case uint32:
		binary.LittleEndian.PutUint32(buf[:], e)
		_, err := w.Write(buf[:])
		return err

	case uint32Time:
		binary.LittleEndian.PutUint32(buf[:], uint32(time.Time(e).Unix()))
		_, err := w.Write(buf[:])
		return err

	case *chainhash.Hash:
		_, err := w.Write(e[:])
		return err
	}

	return fmt.Errorf("writeElement: unsupported type %T", element)
}

// writeElements writes multiple items to w.  It is equivalent to multiple
// calls to writeElement.
func writeElements(w io.Writer, elements ...interface{}) error {
	for _, element := range elements {
		if err := writeElement(w, element); err != nil {
			return err
		}
	}
	return nil
}
