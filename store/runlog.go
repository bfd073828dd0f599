// SPDX-License-Identifier: MIT

package store

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"
	"time"
)

// Run-log keys, in output order.
const (
	keySize        = "Size"
	keyProbability = "Probability"
	keyThreads     = "Threads"
	keySchedule    = "Schedule"
	keyTime        = "Time taken"

	keySep      = ": "
	secondsUnit = " seconds"
)

// RunInfo is the metadata recorded for one multiplication.
type RunInfo struct {
	Size        int
	Probability float64
	Threads     int
	Schedule    string
	Elapsed     time.Duration
}

// Seconds returns Elapsed in fractional seconds.
func (ri RunInfo) Seconds() float64 { return ri.Elapsed.Seconds() }

// probText renders a probability without trailing zeros ("0.01").
func probText(p float64) string { return strconv.FormatFloat(p, 'f', -1, 64) }

// WriteRunLog writes ri as key: value lines.
func WriteRunLog(w io.Writer, ri RunInfo) error {
	_, err := fmt.Fprintf(w, "%s%s%d\n%s%s%s\n%s%s%d\n%s%s%s\n%s%s%f%s\n",
		keySize, keySep, ri.Size,
		keyProbability, keySep, probText(ri.Probability),
		keyThreads, keySep, ri.Threads,
		keySchedule, keySep, ri.Schedule,
		keyTime, keySep, ri.Seconds(), secondsUnit,
	)

	return err
}

// ReadRunLog parses a log written by WriteRunLog. Elapsed keeps the
// microsecond precision of the text form.
//
// Errors: ErrBadLog.
func ReadRunLog(r io.Reader) (RunInfo, error) {
	fields := make(map[string]string, 5)
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		key, value, ok := strings.Cut(sc.Text(), keySep)
		if !ok {
			continue
		}
		fields[strings.TrimSpace(key)] = strings.TrimSpace(value)
	}
	if err := sc.Err(); err != nil {
		return RunInfo{}, fmt.Errorf("store.ReadRunLog: %w", err)
	}

	var (
		ri  RunInfo
		err error
	)
	if ri.Size, err = strconv.Atoi(fields[keySize]); err != nil {
		return RunInfo{}, logErrorf(keySize, fields[keySize])
	}
	if ri.Probability, err = strconv.ParseFloat(fields[keyProbability], 64); err != nil {
		return RunInfo{}, logErrorf(keyProbability, fields[keyProbability])
	}
	if ri.Threads, err = strconv.Atoi(fields[keyThreads]); err != nil {
		return RunInfo{}, logErrorf(keyThreads, fields[keyThreads])
	}
	if ri.Schedule = fields[keySchedule]; ri.Schedule == "" {
		return RunInfo{}, logErrorf(keySchedule, "")
	}
	secs, err := strconv.ParseFloat(strings.TrimSuffix(fields[keyTime], secondsUnit), 64)
	if err != nil {
		return RunInfo{}, logErrorf(keyTime, fields[keyTime])
	}
	ri.Elapsed = time.Duration(math.Round(secs * float64(time.Second)))

	return ri, nil
}

func logErrorf(key, value string) error {
	return fmt.Errorf("store.ReadRunLog: %s=%q: %w", key, value, ErrBadLog)
}
