// SPDX-License-Identifier: EPL-2.0

package aiff_test

import (
	"errors"
	"fmt"
	"strings"

	"github.com/studentenherz/Doppler-Effect-Simulator/formats/aiff"
)

func ExampleDecoder_Decode_errorHandling() {
	_, err := aiff.Decoder{}.Decode(strings.NewReader("RIFF....WAVE"))
	if errors.Is(err, aiff.ErrNotAiffFile) {
		fmt.Println("not an AIFF file")
	}
	// Output:
	// not an AIFF file
}
