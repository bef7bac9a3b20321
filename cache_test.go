package aria

import (
	"bytes"
	"errors"
	"sync"
	"testing"
)

func TestScheduleCacheHitAndMiss(t *testing.T) {
	cache := NewScheduleCache(0)
	key := []byte("0123456789abcdef")

	s1, err := cache.Get(key)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	s2, _ := cache.Get(key)
	if s1 != s2 {
		t.Error("second lookup did not return the cached schedule")
	}
	if cache.Len() != 1 {
		t.Errorf("Len: got %d, expected 1", cache.Len())
	}

	fresh, _ := NewSchedule(key)
	if s1.EncryptionKeys() != fresh.EncryptionKeys() {
		t.Error("cached schedule differs from a fresh derivation")
	}
}

// TestScheduleCacheKeyedByValue checks that mutating the caller's key slice selects a new schedule
func TestScheduleCacheKeyedByValue(t *testing.T) {
	cache := NewScheduleCache(0)
	key := []byte("0123456789abcdef")

	s1, _ := cache.Get(key)
	key[0] ^= 0x01
	s2, _ := cache.Get(key)

	if s1 == s2 || s1.EncryptionKeys() == s2.EncryptionKeys() {
		t.Fatal("changed key value reused the previous schedule")
	}
	if cache.Len() != 2 {
		t.Errorf("Len: got %d, expected 2", cache.Len())
	}
}

func TestScheduleCacheInvalidate(t *testing.T) {
	cache := NewScheduleCache(0)
	key := []byte("0123456789abcdef")

	s1, _ := cache.Get(key)
	cache.Invalidate(key)
	if cache.Len() != 0 {
		t.Fatalf("Len after Invalidate: got %d", cache.Len())
	}
	s2, _ := cache.Get(key)
	if s1 == s2 {
		t.Error("Invalidate did not drop the entry")
	}

	cache.Invalidate([]byte("short"))
	cache.Reset()
	if cache.Len() != 0 {
		t.Errorf("Len after Reset: got %d", cache.Len())
	}
}

func TestScheduleCacheCapacity(t *testing.T) {
	cache := NewScheduleCache(4)
	for i := 0; i < 10; i++ {
		if _, err := cache.Get(bytes.Repeat([]byte{byte(i)}, KeySize)); err != nil {
			t.Fatalf("Get: %v", err)
		}
		if cache.Len() > 4 {
			t.Fatalf("cache grew to %d entries", cache.Len())
		}
	}
}

func TestScheduleCacheInvalidKey(t *testing.T) {
	cache := NewScheduleCache(0)
	if _, err := cache.Get(make([]byte, 32)); !errors.Is(err, ErrInvalidKeySize) {
		t.Errorf("expected ErrInvalidKeySize, got %v", err)
	}
	if _, err := cache.Cipher(nil); !errors.Is(err, ErrInvalidKeySize) {
		t.Errorf("expected ErrInvalidKeySize, got %v", err)
	}
	if cache.Len() != 0 {
		t.Errorf("invalid key was cached")
	}
}

func TestScheduleCacheCipher(t *testing.T) {
	cache := NewScheduleCache(0)
	key := mustHex(t, "000102030405060708090a0b0c0d0e0f")
	c, err := cache.Cipher(key)
	if err != nil {
		t.Fatalf("Cipher: %v", err)
	}
	out := make([]byte, BlockSize)
	c.Encrypt(out, mustHex(t, "00112233445566778899aabbccddeeff"))
	if !bytes.Equal(out, mustHex(t, "d718fbd6ab644c739da95f3be6451778")) {
		t.Errorf("cached cipher: got %x", out)
	}
}

func TestScheduleCacheConcurrent(t *testing.T) {
	cache := NewScheduleCache(8)
	var wg sync.WaitGroup
	for g := 0; g < 32; g++ {
		wg.Add(1)
		go func(g int) {
			defer wg.Done()
			key := bytes.Repeat([]byte{byte(g % 12)}, KeySize)
			want, _ := NewSchedule(key)
			for i := 0; i < 100; i++ {
				s, err := cache.Get(key)
				if err != nil {
					t.Error(err)
					return
				}
				if s.DecryptionKeys() != want.DecryptionKeys() {
					t.Errorf("goroutine %d: wrong schedule", g)
					return
				}
				if i%25 == 0 {
					cache.Invalidate(key)
				}
			}
		}(g)
	}
	wg.Wait()
}
