package token

import (
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestRevocationList_RevokeAndCheck(t *testing.T) {
	l := NewRevocationList(0)

	assert.False(t, l.IsRevoked("a"))

	l.Revoke("a", issuerNow.Add(time.Hour))
	l.Revoke("a", issuerNow.Add(2*time.Hour))

	assert.True(t, l.IsRevoked("a"))
	assert.False(t, l.IsRevoked("b"))
	assert.Equal(t, 1, l.Len())
}

// TestRevocationList_PurgeKeepsGracePeriod verifies that entries outlive
// their expiry by the grace period before being purged.
func TestRevocationList_PurgeKeepsGracePeriod(t *testing.T) {
	l := NewRevocationList(30 * time.Second)
	l.Revoke("expired", issuerNow.Add(-time.Minute))
	l.Revoke("in-grace", issuerNow.Add(-10*time.Second))
	l.Revoke("live", issuerNow.Add(time.Hour))

	assert.Equal(t, 1, l.Purge(issuerNow))

	assert.False(t, l.IsRevoked("expired"))
	assert.True(t, l.IsRevoked("in-grace"))
	assert.True(t, l.IsRevoked("live"))

	assert.Equal(t, 1, l.Purge(issuerNow.Add(time.Minute)))
	assert.Equal(t, 1, l.Len())
}

func TestRevocationList_Concurrent(t *testing.T) {
	l := NewRevocationList(0)

	var wg sync.WaitGroup
	for i := range 50 {
		wg.Add(2)
		go func() {
			defer wg.Done()
			l.Revoke(fmt.Sprintf("jti-%d", i), issuerNow.Add(time.Duration(i)*time.Second))
		}()
		go func() {
			defer wg.Done()
			l.Purge(issuerNow.Add(25 * time.Second))
		}()
	}
	wg.Wait()

	l.Purge(issuerNow.Add(25 * time.Second))
	assert.Equal(t, 25, l.Len())
}
