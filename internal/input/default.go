package input

import (
	"fmt"
	"time"

	"git.lost.host/meutraa/notefall/internal/config"
	"github.com/eiannone/keyboard"
)

// Terminal feeds column presses from the controlling terminal. Unbound
// keys are dropped here so the session never sees them.
func Terminal(events chan<- Event) (func(), error) {
	keyChannel, err := keyboard.GetKeys(128)
	if nil != err {
		return nil, fmt.Errorf("unable to open keyboard: %w", err)
	}

	go func() {
		for key := range keyChannel {
			if nil != key.Err {
				return
			}
			column := config.KeyColumn(key.Rune)
			if column < 0 {
				continue
			}
			events <- Event{Column: column, Pressed: true, At: time.Now()}
		}
	}()

	return func() { keyboard.Close() }, nil
}
