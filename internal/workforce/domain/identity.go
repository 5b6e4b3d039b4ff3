package domain

import (
	"math/rand"
	"regexp"
	"strings"

	pkgDomain "github.com/cafeworks/go-workforce/pkg/domain"
)

const (
	employeeIDPrefix   = "UI"
	employeeIDAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
	employeeIDSuffix   = 8
)

var employeeIDPattern = regexp.MustCompile(`^UI[A-Z0-9]{8}$`)

// ValidEmployeeID reports whether id matches the employee identifier format.
func ValidEmployeeID(id string) bool {
	return employeeIDPattern.MatchString(id)
}

// NewEmployeeIDGenerator returns a generator producing identifiers of the
// form "UI" plus eight uniform draws from A-Z0-9. Candidates are re-sampled
// until they match the format pattern. Uniqueness against existing employees
// is enforced by the create handler, not here.
//
// intn draws a uniform integer in [0, n); nil selects math/rand's
// concurrency-safe top-level source. Tests inject a seeded source.
func NewEmployeeIDGenerator(intn func(n int) int) pkgDomain.IDGenerator[string] {
	if intn == nil {
		intn = rand.Intn
	}

	return func() string {
		for {
			var b strings.Builder
			b.Grow(len(employeeIDPrefix) + employeeIDSuffix)
			b.WriteString(employeeIDPrefix)
			for i := 0; i < employeeIDSuffix; i++ {
				b.WriteByte(employeeIDAlphabet[intn(len(employeeIDAlphabet))])
			}

			if id := b.String(); employeeIDPattern.MatchString(id) {
				return id
			}
		}
	}
}
