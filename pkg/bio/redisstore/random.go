package redisstore

import (
	"math/rand"
	"sync"
	"time"
)

// lockValues generates the values that identify the holder of a publication lock
var lockValues = struct {
	sync.Mutex
	rnd *rand.Rand
}{rnd: rand.New(rand.NewSource(time.Now().UnixNano()))}

func lockValue() string {
	const chars = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"
	str := make([]byte, 20)
	lockValues.Lock()
	for i := range str {
		str[i] = chars[lockValues.rnd.Intn(len(chars))]
	}
	lockValues.Unlock()
	return string(str)
}
