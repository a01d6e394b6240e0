package fract

import (
	"fmt"
	"os/exec"
	"strconv"
	"strings"
	"time"

	"pgregory.net/rand"
)

// Seed holds the primary seed used for random numbers
type Seed struct {
	intSeed int64
}

// Jan 1, 2020 (to make filenames a little smaller)
const epoch2020 = 1577836800

// Init initializes the seed
// `hexSeed` is either the empty string or a hex value
func Init(hexSeed string) (Seed, error) {
	s := Seed{intSeed: time.Now().UnixNano() - epoch2020}
	if hexSeed != "" {
		err := s.SetSeed(hexSeed)
		return s, err
	}
	return s, nil
}

// GetSeed returns the rand initialization seed
func (s Seed) GetSeed() int64 {
	return s.intSeed
}

// SetSeed sets the seed given the file seed part of filename
func (s *Seed) SetSeed(hexSeed string) (err error) {
	s.intSeed, err = strconv.ParseInt(hexSeed, 16, 64)
	return err
}

// Rand returns a uniform generator seeded with the primary seed. Two
// generators from the same Seed produce the same draws.
func (s Seed) Rand() *rand.Rand {
	return rand.New(uint64(s.intSeed))
}

// GetFilename returns a string to use for this file
func (s Seed) GetFilename(prefix, ext string) string {
	return fmt.Sprintf("%s%s-%x%s", prefix, getGitHash(), s.intSeed, ext)
}

func getGitHash() string {
	out, err := exec.Command("git", "rev-parse", "--verify", "HEAD").Output()
	if err != nil {
		return ""
	}
	return strings.TrimSpace(string(out))[0:7]
}
