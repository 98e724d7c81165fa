package words_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_namedAtomsInternByName(t *testing.T) {
	got := run(t, `"foo" -1 (atom) drop "foo" -1 (atom) drop eq? . cr`)
	assert.Equal(t, "-1 \n", got)
}

func Test_anonAtomsAreUniquePerAllocation(t *testing.T) {
	got := run(t, `anon anon eq? . cr`)
	assert.Equal(t, "0 \n", got)
}

func Test_atomLookupWithoutCreateFails(t *testing.T) {
	got := run(t, `"bar-never-defined" 0 (atom) . cr`)
	assert.Equal(t, "0 \n", got)
}

func Test_atomToString(t *testing.T) {
	got := run(t, `"baz" -1 (atom) drop atom>$ type cr`)
	assert.Equal(t, "baz\n", got)
}
