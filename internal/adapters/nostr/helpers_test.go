package nostr_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
	"go.trai.ch/degrees/internal/adapters/nostr"
	"go.trai.ch/degrees/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

// Public keys of the secret keys 1, 2 and 3.
const (
	pubOne   = "79be667ef9dcbbac55a06295ce870b07029bfcdb2dce28d959f2815b16f81798"
	pubTwo   = "c6047f9441ed7d6d3045406e95c07cd85c778e4b8cef3ca7abac09b95c709ee5"
	pubThree = "f9308a019258c31049344f85f89d5229b531c845836f99b08601f113bce036f9"
)

func testKeys(t *testing.T, n int) *nostr.Keys {
	t.Helper()
	k, err := nostr.ParseSecretKey(fmt.Sprintf("%064x", n))
	require.NoError(t, err)
	return k
}

func signed(t *testing.T, k *nostr.Keys, kind int, createdAt int64, content string, tags ...[]string) *nostr.Event {
	t.Helper()
	ev := &nostr.Event{CreatedAt: createdAt, Kind: kind, Tags: tags, Content: content}
	require.NoError(t, k.Sign(ev))
	return ev
}

func contactList(t *testing.T, k *nostr.Keys, createdAt int64, follows ...string) *nostr.Event {
	t.Helper()
	tags := make([][]string, 0, len(follows))
	for _, f := range follows {
		tags = append(tags, []string{"p", f})
	}
	return signed(t, k, nostr.KindContactList, createdAt, "", tags...)
}

func quietLogger(t *testing.T) *mocks.MockLogger {
	t.Helper()
	log := mocks.NewMockLogger(gomock.NewController(t))
	log.EXPECT().Info(gomock.Any()).AnyTimes()
	log.EXPECT().Warn(gomock.Any()).AnyTimes()
	log.EXPECT().Error(gomock.Any()).AnyTimes()
	return log
}
