package hash

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/base64"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/crypto/argon2"
)

// ErrInvalidHash 存储的哈希串格式不合法（截断、改库等）
var ErrInvalidHash = errors.New("hash: invalid argon2 hash string")

type Options struct {
	Memory  uint32 // KiB
	Time    uint32
	Threads uint8
	KeyLen  uint32
	SaltLen uint32
}

// DefaultOptions 64MiB / t=3 / p=2，OWASP 推荐档
func DefaultOptions() Options {
	return Options{Memory: 64 * 1024, Time: 3, Threads: 2, KeyLen: 32, SaltLen: 16}
}

// Hasher Argon2id，输出 PHC 格式：$argon2id$v=19$m=...,t=...,p=...$salt$hash
// 参数编码在哈希串里，改配置不影响旧哈希的校验。
type Hasher struct{ opts Options }

func New(opts Options) *Hasher {
	if opts.Memory == 0 {
		opts = DefaultOptions()
	}
	return &Hasher{opts: opts}
}

// Hash 每次调用生成新随机盐，相同明文产出不同哈希
func (h *Hasher) Hash(password string) (string, error) {
	salt := make([]byte, h.opts.SaltLen)
	if _, err := rand.Read(salt); err != nil {
		return "", fmt.Errorf("hash: generate salt: %w", err)
	}
	key := argon2.IDKey([]byte(password), salt, h.opts.Time, h.opts.Memory, h.opts.Threads, h.opts.KeyLen)
	return fmt.Sprintf("$argon2id$v=%d$m=%d,t=%d,p=%d$%s$%s",
		argon2.Version, h.opts.Memory, h.opts.Time, h.opts.Threads,
		base64.RawStdEncoding.EncodeToString(salt),
		base64.RawStdEncoding.EncodeToString(key),
	), nil
}

// Check 参数从哈希串自身解出；不匹配返回 (false, nil)，坏串返回 ErrInvalidHash
func (h *Hasher) Check(password, encoded string) (bool, error) {
	memory, time, threads, salt, key, err := decode(encoded)
	if err != nil {
		return false, err
	}
	computed := argon2.IDKey([]byte(password), salt, time, memory, threads, uint32(len(key)))
	return subtle.ConstantTimeCompare(computed, key) == 1, nil
}

func decode(encoded string) (memory, time uint32, threads uint8, salt, key []byte, err error) {
	parts := strings.Split(encoded, "$")
	if len(parts) != 6 || parts[0] != "" || parts[1] != "argon2id" {
		err = ErrInvalidHash
		return
	}
	var version int
	if _, e := fmt.Sscanf(parts[2], "v=%d", &version); e != nil || version != argon2.Version {
		err = ErrInvalidHash
		return
	}
	if _, e := fmt.Sscanf(parts[3], "m=%d,t=%d,p=%d", &memory, &time, &threads); e != nil {
		err = ErrInvalidHash
		return
	}
	if salt, err = base64.RawStdEncoding.DecodeString(parts[4]); err != nil {
		err = ErrInvalidHash
		return
	}
	if key, err = base64.RawStdEncoding.DecodeString(parts[5]); err != nil {
		err = ErrInvalidHash
		return
	}
	if memory == 0 || time == 0 || threads == 0 || len(salt) == 0 || len(key) == 0 {
		err = ErrInvalidHash
	}
	return
}
