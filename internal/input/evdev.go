package input

import (
	"encoding/binary"
	"fmt"
	"log"
	"os"
	"syscall"
	"time"

	"git.lost.host/meutraa/notefall/internal/config"
)

// https://github.com/torvalds/linux/blob/master/include/uapi/linux/input-event-codes.h
const evKey = 0x01

// Scancodes for the letter rows of a standard layout.
var scancodes = map[rune]uint16{
	'q': 16, 'w': 17, 'e': 18, 'r': 19, 't': 20, 'y': 21, 'u': 22, 'i': 23, 'o': 24, 'p': 25,
	'a': 30, 's': 31, 'd': 32, 'f': 33, 'g': 34, 'h': 35, 'j': 36, 'k': 37, 'l': 38,
	'z': 44, 'x': 45, 'c': 46, 'v': 47, 'b': 48, 'n': 49, 'm': 50,
}

// columnCodes maps scancodes to columns for the configured keys, so the
// device backend honors the same bindings as the terminal one. Keys with
// no known scancode stay unbound.
func columnCodes(keys []rune) map[uint16]int {
	codes := map[uint16]int{}
	for i, r := range keys {
		if i >= config.NKey {
			break
		}
		if code, ok := scancodes[r]; ok {
			codes[code] = i
		}
	}
	return codes
}

type keyEvent struct {
	Time  syscall.Timeval
	Type  uint16
	Code  uint16
	Value int32
}

// Device reads raw key events from an evdev device node. Unlike the
// terminal backend this sees presses and releases independently.
func Device(path string, events chan<- Event) (func(), error) {
	file, err := os.Open(path)
	if nil != err {
		return nil, fmt.Errorf("unable to open input device: %w", err)
	}
	codes := columnCodes(config.Keys())

	go func() {
		defer file.Close()

		var ev keyEvent
		for {
			if err := binary.Read(file, binary.LittleEndian, &ev); nil != err {
				log.Println("unable to read input device:", err)
				return
			}
			if ev.Type != evKey {
				continue
			}
			column, ok := codes[ev.Code]
			if !ok {
				continue
			}
			events <- Event{
				Column:   column,
				Pressed:  ev.Value == 1,
				Released: ev.Value == 0,
				At:       time.Now(),
			}
		}
	}()

	return func() { file.Close() }, nil
}
