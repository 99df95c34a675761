package service

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

func restoreGlobals() {
	bcryptGenerateFromPassword = bcrypt.GenerateFromPassword
	bcryptCompareHashAndPassword = bcrypt.CompareHashAndPassword
	parseWithClaims = jwt.ParseWithClaims
	timeNow = func() time.Time { return time.Now().UTC() }
}

// fastHashing 降低 bcrypt cost 讓測試跑得快
func fastHashing(t *testing.T) {
	t.Cleanup(restoreGlobals)
	bcryptGenerateFromPassword = func(p []byte, _ int) ([]byte, error) {
		return bcrypt.GenerateFromPassword(p, bcrypt.MinCost)
	}
}

// steppingClock 每次呼叫前進一秒
func steppingClock(t *testing.T) {
	t.Cleanup(restoreGlobals)
	base := time.Date(2025, 5, 1, 12, 0, 0, 0, time.UTC)
	n := 0
	timeNow = func() time.Time {
		n++
		return base.Add(time.Duration(n) * time.Second)
	}
}
