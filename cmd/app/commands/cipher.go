package commands

import (
	"fmt"
	"io"
	"strings"

	cipherService "github.com/pinkoot/AI-Assistant/internal/cipher/service"
)

// stdinMarker as --text reads the text from standard input.
const stdinMarker = "-"

// ResolveText returns text, or the contents of r without the trailing line break when
// text is "-".
func ResolveText(text string, r io.Reader) (string, error) {
	if text != stdinMarker {
		return text, nil
	}
	raw, err := io.ReadAll(r)
	if err != nil {
		return "", fmt.Errorf("failed to read text from stdin: %w", err)
	}
	return strings.TrimRight(string(raw), "\r\n"), nil
}

// RunEncode shifts text forward by the protocol key and writes the result.
func RunEncode(cipher cipherService.Cipher, w io.Writer, text, format string) error {
	return runCipher(cipher.Encode, w, text, format)
}

// RunDecode reverses RunEncode.
func RunDecode(cipher cipherService.Cipher, w io.Writer, text, format string) error {
	return runCipher(cipher.Decode, w, text, format)
}

func runCipher(transform func(string) (string, error), w io.Writer, text, format string) error {
	asJSON, err := isJSON(format)
	if err != nil {
		return err
	}

	output, err := transform(text)
	if err != nil {
		return err
	}

	if asJSON {
		return writeJSON(w, map[string]string{
			"input":  text,
			"output": output,
		})
	}
	_, err = fmt.Fprintln(w, output)
	return err
}
