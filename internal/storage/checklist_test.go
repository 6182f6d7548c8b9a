package storage

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustJSON(t *testing.T, v interface{}) []byte {
	t.Helper()
	raw, err := json.Marshal(v)
	require.NoError(t, err)
	return raw
}

func TestSafetyItems_Fixed(t *testing.T) {
	assert.Len(t, SafetyItems, 16)
	assert.Equal(t, "작업구역 설정(출입경고 표지)", SafetyItems[0])
	assert.Equal(t, "운전요원의 입회", SafetyItems[15])
}

func TestSuppCheckKey(t *testing.T) {
	// 순수 함수 — 호출마다 동일한 키
	assert.Equal(t, "밀폐_통신수단", SuppCheckKey("밀폐", "통신수단"))
	assert.Equal(t, SuppCheckKey("밀폐", "통신수단"), SuppCheckKey("밀폐", "통신수단"))
}

// 사용 중인 (구분, 항목) 조합에서 키 충돌이 없어야 한다
func TestSupplementaryKeys_Injective(t *testing.T) {
	keys := SupplementaryKeys()

	require.Len(t, keys, 17)

	seen := map[string]bool{}
	for _, k := range keys {
		assert.False(t, seen[k], "중복 키: %s", k)
		seen[k] = true
	}
}

func TestSupplementaryKeys_Order(t *testing.T) {
	keys := SupplementaryKeys()

	// 구분 순서 유지: 밀폐 → 정전 → 굴착 → 고소 → 중장비
	assert.Equal(t, "밀폐_통신수단", keys[0])
	assert.Equal(t, "밀폐_구명장구", keys[1])
	assert.Equal(t, "정전_제어실내림", keys[2])
	assert.Equal(t, "중장비_부속장구", keys[16])
}
