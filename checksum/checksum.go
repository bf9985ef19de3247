// Package checksum computes the check digits used by the linear symbologies.
package checksum

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidInput is returned when input contains a character the check
// digit algorithm cannot weigh.
var ErrInvalidInput = errors.New("checksum: invalid input")

// Code39Charset is the 43-symbol base alphabet of Code 39, in check-value
// order.
const Code39Charset = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ-. $/+%"

// Mod10CheckDigit sums data[i]*weightEven for positions whose parity matches
// the even flag and data[i]*weightOdd otherwise, and returns
// (10 - sum mod 10) mod 10. When firstIsEven is set, index 0 is an even
// position.
func Mod10CheckDigit(data string, weightEven, weightOdd int, firstIsEven bool) (int, error) {
	evenFlag := 1
	if firstIsEven {
		evenFlag = 0
	}
	sum := 0
	for i := 0; i < len(data); i++ {
		d, err := digitAt(data, i)
		if err != nil {
			return 0, err
		}
		if i%2 == evenFlag {
			sum += d * weightEven
		} else {
			sum += d * weightOdd
		}
	}
	return (10 - sum%10) % 10, nil
}

// Mod43CheckIndex returns the Code 39 check character index: the sum of
// each character's position in Code39Charset, modulo 43.
func Mod43CheckIndex(data string) (int, error) {
	sum := 0
	for i := 0; i < len(data); i++ {
		idx := strings.IndexByte(Code39Charset, data[i])
		if idx < 0 {
			return 0, fmt.Errorf("character %q at position %d is not in the code 39 set: %w", data[i], i, ErrInvalidInput)
		}
		sum += idx
	}
	return sum % 43, nil
}

// UPCA computes the UPC-A check digit: digits at even indexes weigh 3.
func UPCA(data string) (int, error) {
	return upcean(data, 0)
}

// EAN13 computes the EAN-13 check digit: digits at odd indexes weigh 3.
func EAN13(data string) (int, error) {
	return upcean(data, 1)
}

func upcean(data string, triplePhase int) (int, error) {
	sum := 0
	for i := 0; i < len(data); i++ {
		d, err := digitAt(data, i)
		if err != nil {
			return 0, err
		}
		if i%2 == triplePhase {
			sum += d * 3
		} else {
			sum += d
		}
	}
	check := 10 - sum%10
	if check == 10 {
		check = 0
	}
	return check, nil
}

// GTIN computes the GS1 check digit, weighting 3 and 1 alternately from the
// rightmost digit. The result brings the sum up to the next multiple of ten.
func GTIN(data string) (int, error) {
	sum := 0
	weight := 3
	for i := len(data) - 1; i >= 0; i-- {
		d, err := digitAt(data, i)
		if err != nil {
			return 0, err
		}
		sum += d * weight
		weight = 4 - weight
	}
	return (sum+9)/10*10 - sum, nil
}

// Valid reports whether the last digit of data is the check digit that
// compute returns for the preceding digits.
func Valid(data string, compute func(string) (int, error)) bool {
	if len(data) < 2 {
		return false
	}
	check, err := compute(data[:len(data)-1])
	if err != nil {
		return false
	}
	return int(data[len(data)-1]-'0') == check
}

func digitAt(data string, i int) (int, error) {
	c := data[i]
	if c < '0' || c > '9' {
		return 0, fmt.Errorf("non-digit character %q at position %d: %w", c, i, ErrInvalidInput)
	}
	return int(c - '0'), nil
}
