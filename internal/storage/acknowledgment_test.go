package storage

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAcknowledgment_IsComplete(t *testing.T) {
	tests := []struct {
		name string
		ack  Acknowledgment
		want bool
	}{
		{
			name: "동의 + 성명 + 날짜",
			ack:  Acknowledgment{Agreed: true, Name: "X", Date: "2024-01-01", FileOpened: true},
			want: true,
		},
		{
			name: "성명 없음",
			ack:  Acknowledgment{Agreed: true, Name: "", Date: "2024-01-01", FileOpened: true},
			want: false,
		},
		{
			name: "날짜 없음",
			ack:  Acknowledgment{Agreed: true, Name: "X", FileOpened: true},
			want: false,
		},
		{
			name: "동의 안 함",
			ack:  Acknowledgment{Agreed: false, Name: "X", Date: "2024-01-01", FileOpened: true},
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.ack.IsComplete())
		})
	}
}

// 첨부파일 열람 전에는 동의가 성립하지 않는다
func TestAcknowledgment_Normalized(t *testing.T) {
	ack := Acknowledgment{Agreed: true, Name: "X", Date: "2024-01-01", FileOpened: false}

	norm := ack.Normalized()

	assert.False(t, norm.Agreed)
	assert.False(t, norm.IsComplete())

	// 열람 후에는 그대로 유지
	ack.FileOpened = true
	assert.True(t, ack.Normalized().Agreed)
}

func TestParseAcknowledgment(t *testing.T) {
	t.Run("열람 없이 동의 저장된 데이터도 복원 시 해제", func(t *testing.T) {
		ack := ParseAcknowledgment([]byte(`{"agreed":true,"name":"X","date":"2024-01-01","fileOpened":false}`))
		assert.False(t, ack.Agreed)
	})

	t.Run("저장분 없음", func(t *testing.T) {
		ack := ParseAcknowledgment(nil)
		assert.Equal(t, Acknowledgment{}, ack)
	})

	t.Run("깨진 JSON", func(t *testing.T) {
		ack := ParseAcknowledgment([]byte(`not json`))
		assert.Equal(t, Acknowledgment{}, ack)
	})
}
