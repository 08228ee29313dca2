package httpx

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/acadeval/encuestas/pkg/jwtx"
	"github.com/stretchr/testify/require"
)

type fakeVerifier struct {
	key []byte
}

func (f fakeVerifier) VerifyAccess(raw string) (jwtx.Claims, error) {
	return jwtx.Verify(raw, f.key)
}

func signedToken(t *testing.T, key []byte, role string, ttl time.Duration) string {
	t.Helper()
	raw, err := jwtx.Sign(jwtx.NewClaims("u1", "juan123", role, "test", ttl, time.Now()), key)
	require.NoError(t, err)
	return raw
}

func TestRequireRoles(t *testing.T) {
	t.Parallel()

	key := []byte("authn-test-key")
	v := fakeVerifier{key: key}

	var gotUserID string
	handler := Chain(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUserID = UserIDFromContext(r.Context())
		w.WriteHeader(http.StatusOK)
	}), RequireRoles(v, "administrador", "gestor"))

	do := func(authz string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodGet, "/session", nil)
		if authz != "" {
			req.Header.Set("Authorization", authz)
		}
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)
		return rec
	}

	t.Run("missing token is 401", func(t *testing.T) {
		require.Equal(t, http.StatusUnauthorized, do("").Code)
	})

	t.Run("non-bearer header is 401", func(t *testing.T) {
		require.Equal(t, http.StatusUnauthorized, do("Basic abc").Code)
	})

	t.Run("forged token is 403", func(t *testing.T) {
		forged := signedToken(t, []byte("other-key"), "administrador", time.Hour)
		require.Equal(t, http.StatusForbidden, do("Bearer "+forged).Code)
	})

	t.Run("expired token is 403", func(t *testing.T) {
		expired := signedToken(t, key, "administrador", -time.Hour)
		require.Equal(t, http.StatusForbidden, do("Bearer "+expired).Code)
	})

	t.Run("role outside allow-list is 401", func(t *testing.T) {
		tok := signedToken(t, key, "estudiante", time.Hour)
		require.Equal(t, http.StatusUnauthorized, do("Bearer "+tok).Code)
	})

	t.Run("allowed role passes and attaches identity", func(t *testing.T) {
		tok := signedToken(t, key, "gestor", time.Hour)
		rec := do("Bearer " + tok)
		require.Equal(t, http.StatusOK, rec.Code)
		require.Equal(t, "u1", gotUserID)
	})
}
