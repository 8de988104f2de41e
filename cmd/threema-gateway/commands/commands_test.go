package commands

import (
	"bytes"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	gateway "github.com/threema-gateway/client-go"
)

// run executes the CLI with stdin and returns what it printed to stdout.
func run(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	root := NewRootCommand(strings.NewReader(stdin), &stdout, &stderr)
	root.SetArgs(args)
	err := root.Execute()
	return stdout.String(), err
}

func keyPairFiles(t *testing.T) (privPath, pubPath string) {
	t.Helper()
	dir := t.TempDir()
	privPath = filepath.Join(dir, "private.key")
	pubPath = filepath.Join(dir, "public.key")
	_, err := run(t, "", "generate", privPath, pubPath)
	require.NoError(t, err)
	return privPath, pubPath
}

func readKeyHex(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	return strings.TrimSpace(string(data))
}

// fakeGateway serves the gateway endpoints the CLI calls and counts requests.
type fakeGateway struct {
	*httptest.Server
	requests atomic.Int32
}

func newFakeGateway(t *testing.T, handler http.HandlerFunc) *fakeGateway {
	t.Helper()
	g := &fakeGateway{}
	g.Server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		g.requests.Add(1)
		handler(w, r)
	}))
	t.Cleanup(g.Close)
	return g
}

func (g *fakeGateway) args(args ...string) []string {
	return append([]string{"--url", g.URL, "--from", "*TESTID1", "--secret", "s3cret"}, args...)
}

func TestGenerate_WritesKeyFiles(t *testing.T) {
	privPath, pubPath := keyPairFiles(t)

	privHex := readKeyHex(t, privPath)
	pubHex := readKeyHex(t, pubPath)
	assert.Len(t, privHex, 64)
	assert.Len(t, pubHex, 64)
	assert.Equal(t, strings.ToLower(privHex), privHex)

	raw, err := os.ReadFile(pubPath)
	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(string(raw), "\n"), "key file needs a trailing newline")

	info, err := os.Stat(privPath)
	require.NoError(t, err)
	assert.Equal(t, privateKeyPerm, info.Mode().Perm())
}

func TestGenerate_RestrictsExistingPrivateKeyFile(t *testing.T) {
	dir := t.TempDir()
	privPath := filepath.Join(dir, "private.key")
	pubPath := filepath.Join(dir, "public.key")
	require.NoError(t, os.WriteFile(privPath, []byte("old\n"), 0o644))
	require.NoError(t, os.Chmod(privPath, 0o644))

	_, err := run(t, "", "generate", privPath, pubPath)
	require.NoError(t, err)

	info, err := os.Stat(privPath)
	require.NoError(t, err)
	assert.Equal(t, privateKeyPerm, info.Mode().Perm())
	assert.Len(t, readKeyHex(t, privPath), 64)
}

func TestDerive_MatchesGeneratedPublicKey(t *testing.T) {
	privPath, pubPath := keyPairFiles(t)

	out, err := run(t, "", "derive", privPath)
	require.NoError(t, err)
	assert.Equal(t, readKeyHex(t, pubPath)+"\n", out)
}

func TestDerive_InvalidKeyFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.key")
	require.NoError(t, os.WriteFile(path, []byte("abcd\n"), 0o600))

	_, err := run(t, "", "derive", path)
	require.ErrorIs(t, err, gateway.ErrInvalidKey)
}

func TestEncryptDecrypt_RoundTrip(t *testing.T) {
	alicePriv, alicePub := keyPairFiles(t)
	bobPriv, bobPub := keyPairFiles(t)

	envelope, err := run(t, "hello\n", "encrypt", alicePriv, bobPub)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(envelope), "\n")
	require.Len(t, lines, 2)
	assert.Len(t, lines[0], 2*gateway.NonceSize)

	text, err := run(t, envelope, "decrypt", bobPriv, alicePub)
	require.NoError(t, err)
	assert.Equal(t, "hello\n", text)
}

func TestDecrypt_WrongKey(t *testing.T) {
	alicePriv, alicePub := keyPairFiles(t)
	_, bobPub := keyPairFiles(t)
	evePriv, _ := keyPairFiles(t)

	envelope, err := run(t, "secret", "encrypt", alicePriv, bobPub)
	require.NoError(t, err)

	out, err := run(t, envelope, "decrypt", evePriv, alicePub)
	require.ErrorIs(t, err, gateway.ErrDecryptionFailed)
	assert.Empty(t, out)
}

func TestDecrypt_MalformedEnvelope(t *testing.T) {
	privPath, pubPath := keyPairFiles(t)

	_, err := run(t, "not an envelope", "decrypt", privPath, pubPath)
	require.ErrorIs(t, err, gateway.ErrInvalidInput)
}

func TestEncrypt_EmptyStdin(t *testing.T) {
	privPath, pubPath := keyPairFiles(t)

	_, err := run(t, "\n", "encrypt", privPath, pubPath)
	require.Error(t, err)
}

func TestHash(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{"email", []string{"hash", "-e", "test@threema.ch"}, "1ea093239cc5f0e1b6ec81b866265b921f26dc4033025410063309f4d1a8ee2c"},
		{"email long flag", []string{"hash", "--email", " TEST@threema.ch "}, "1ea093239cc5f0e1b6ec81b866265b921f26dc4033025410063309f4d1a8ee2c"},
		{"phone", []string{"hash", "-p", "+41 79 123 45 67"}, "ad398f4d7ebe63c6550a486cc6e07f9baa09bd9d8b3d8cb9d9be106d35a7fdbc"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := run(t, "", tt.args...)
			require.NoError(t, err)
			assert.Equal(t, tt.want+"\n", out)
		})
	}
}

func TestHash_Selectors(t *testing.T) {
	_, err := run(t, "", "hash")
	require.ErrorIs(t, err, gateway.ErrNoSelection)

	_, err = run(t, "", "hash", "-e", "a@b.c", "-p", "123")
	require.ErrorIs(t, err, gateway.ErrMultipleSelections)
}

func TestSendSimple(t *testing.T) {
	g := newFakeGateway(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/send_simple", r.URL.Path)
		assert.NoError(t, r.ParseForm())
		assert.Equal(t, "41791234567", r.PostForm.Get("phone"))
		assert.Equal(t, "hello world", r.PostForm.Get("text"))
		assert.Equal(t, "*TESTID1", r.PostForm.Get("from"))
		io.WriteString(w, "0123456789abcdef")
	})

	out, err := run(t, "hello world\n", g.args("send_simple", "--phone", "41791234567")...)
	require.NoError(t, err)
	assert.Equal(t, "0123456789abcdef\n", out)
}

func TestSendSimple_SelectorCheckedBeforeRequest(t *testing.T) {
	g := newFakeGateway(t, func(w http.ResponseWriter, r *http.Request) {})

	_, err := run(t, "hello", g.args("send_simple")...)
	require.ErrorIs(t, err, gateway.ErrNoSelection)

	_, err = run(t, "hello", g.args("send_simple", "--to", "ECHOECHO", "--email", "a@b.c")...)
	require.ErrorIs(t, err, gateway.ErrMultipleSelections)

	assert.Zero(t, g.requests.Load())
}

func TestSendSimple_TransportErrorPassedThrough(t *testing.T) {
	g := newFakeGateway(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusPaymentRequired)
	})

	_, err := run(t, "hello", g.args("send_simple", "--to", "ECHOECHO")...)
	require.ErrorIs(t, err, gateway.ErrNoCredits)

	var apiErr *gateway.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusPaymentRequired, apiErr.StatusCode)
}

func TestSendE2E_WithKeyFiles(t *testing.T) {
	senderPriv, senderPub := keyPairFiles(t)
	recipientPriv, recipientPub := keyPairFiles(t)

	received := make(chan [2]string, 1)
	g := newFakeGateway(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/send_e2e", r.URL.Path)
		assert.NoError(t, r.ParseForm())
		assert.Equal(t, "ECHOECHO", r.PostForm.Get("to"))
		received <- [2]string{r.PostForm.Get("nonce"), r.PostForm.Get("box")}
		io.WriteString(w, "e2e-message-id")
	})

	out, err := run(t, "hello\n", g.args("send_e2e", "ECHOECHO", senderPriv, recipientPub)...)
	require.NoError(t, err)
	assert.Equal(t, "e2e-message-id\n", out)
	assert.EqualValues(t, 1, g.requests.Load())

	got := <-received
	text, err := run(t, got[0]+"\n"+got[1], "decrypt", recipientPriv, senderPub)
	require.NoError(t, err)
	assert.Equal(t, "hello\n", text)
}

func TestSendE2E_FetchesPublicKey(t *testing.T) {
	senderPriv, _ := keyPairFiles(t)
	_, recipientPub := keyPairFiles(t)
	pubHex := readKeyHex(t, recipientPub)

	g := newFakeGateway(t, func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/pubkeys/ECHOECHO":
			io.WriteString(w, pubHex)
		case "/send_e2e":
			io.WriteString(w, "msgid")
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	})

	out, err := run(t, "hello", g.args("send_e2e", "ECHOECHO", senderPriv)...)
	require.NoError(t, err)
	assert.Equal(t, "msgid\n", out)
	assert.EqualValues(t, 2, g.requests.Load())
}

func TestSendE2E_UnknownRecipient(t *testing.T) {
	senderPriv, _ := keyPairFiles(t)
	g := newFakeGateway(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})

	_, err := run(t, "hello", g.args("send_e2e", "NOBODY00", senderPriv)...)
	require.ErrorIs(t, err, gateway.ErrNotFound)
	assert.EqualValues(t, 1, g.requests.Load())
}

func TestLookup(t *testing.T) {
	tests := []struct {
		name string
		args []string
		path string
	}{
		{"email", []string{"-e", "Test@Threema.ch"}, "/lookups/email_hash/1ea093239cc5f0e1b6ec81b866265b921f26dc4033025410063309f4d1a8ee2c"},
		{"phone", []string{"-p", "+41 79 123 45 67"}, "/lookups/phone_hash/ad398f4d7ebe63c6550a486cc6e07f9baa09bd9d8b3d8cb9d9be106d35a7fdbc"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := newFakeGateway(t, func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, tt.path, r.URL.Path)
				io.WriteString(w, "ECHOECHO")
			})

			out, err := run(t, "", g.args(append([]string{"lookup"}, tt.args...)...)...)
			require.NoError(t, err)
			assert.Equal(t, "ECHOECHO\n", out)
		})
	}
}

func TestLookup_ByID(t *testing.T) {
	_, pubPath := keyPairFiles(t)
	pubHex := readKeyHex(t, pubPath)

	g := newFakeGateway(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/pubkeys/ECHOECHO", r.URL.Path)
		io.WriteString(w, pubHex)
	})

	out, err := run(t, "", g.args("lookup", "-i", "ECHOECHO")...)
	require.NoError(t, err)
	assert.Equal(t, "ECHOECHO\n", out)
}

func TestLookup_SelectorCheckedBeforeCredentials(t *testing.T) {
	_, err := run(t, "", "lookup")
	require.ErrorIs(t, err, gateway.ErrNoSelection)

	_, err = run(t, "", "lookup", "-i", "ECHOECHO", "-e", "a@b.c", "-p", "1")
	require.ErrorIs(t, err, gateway.ErrMultipleSelections)
	require.ErrorIs(t, err, gateway.ErrInvalidArgument)
}

func TestLookup_NotFound(t *testing.T) {
	g := newFakeGateway(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})

	_, err := run(t, "", g.args("lookup", "-e", "nobody@example.com")...)
	require.ErrorIs(t, err, gateway.ErrNotFound)
}

func TestCapabilities(t *testing.T) {
	g := newFakeGateway(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/capabilities/ECHOECHO", r.URL.Path)
		io.WriteString(w, "text, image,file")
	})

	out, err := run(t, "", g.args("capabilities", "ECHOECHO")...)
	require.NoError(t, err)
	assert.Equal(t, "text,image,file\n", out)
}

func TestCredits(t *testing.T) {
	g := newFakeGateway(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/credits", r.URL.Path)
		assert.Equal(t, "threema-gateway-go/"+Version, r.Header.Get("User-Agent"))
		io.WriteString(w, "100\n")
	})

	out, err := run(t, "", g.args("credits")...)
	require.NoError(t, err)
	assert.Equal(t, "100\n", out)
}

func TestCredentials_FromEnvFile(t *testing.T) {
	if os.Getenv(EnvIdentity) != "" || os.Getenv(EnvSecret) != "" {
		t.Skip("gateway credentials already set in the environment")
	}
	t.Cleanup(func() {
		os.Unsetenv(EnvIdentity)
		os.Unsetenv(EnvSecret)
	})

	g := newFakeGateway(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "*ENVID01", r.URL.Query().Get("from"))
		assert.Equal(t, "from-dotenv", r.URL.Query().Get("secret"))
		io.WriteString(w, "7")
	})

	envFile := filepath.Join(t.TempDir(), "gateway.env")
	content := EnvIdentity + "=*ENVID01\n" + EnvSecret + "=from-dotenv\n"
	require.NoError(t, os.WriteFile(envFile, []byte(content), 0o600))

	out, err := run(t, "", "--env-file", envFile, "--url", g.URL, "credits")
	require.NoError(t, err)
	assert.Equal(t, "7\n", out)
}

func TestCredentials_Missing(t *testing.T) {
	t.Setenv(EnvIdentity, "")
	t.Setenv(EnvSecret, "")

	_, err := run(t, "", "credits")
	require.ErrorIs(t, err, gateway.ErrMissingIdentity)

	_, err = run(t, "", "--from", "*TESTID1", "credits")
	require.ErrorIs(t, err, gateway.ErrMissingSecret)
}

func TestCredentials_MissingEnvFile(t *testing.T) {
	_, err := run(t, "", "--env-file", filepath.Join(t.TempDir(), "missing.env"), "version")
	require.Error(t, err)
}

func TestVerbose_LogsRequests(t *testing.T) {
	g := newFakeGateway(t, func(w http.ResponseWriter, r *http.Request) {
		io.WriteString(w, "5")
	})

	var stdout, stderr bytes.Buffer
	root := NewRootCommand(strings.NewReader(""), &stdout, &stderr)
	root.SetArgs(g.args("-v", "credits"))
	require.NoError(t, root.Execute())

	assert.Contains(t, stderr.String(), "gateway request")
	assert.NotContains(t, stderr.String(), "s3cret")
}

func TestVersion(t *testing.T) {
	out, err := run(t, "", "version")
	require.NoError(t, err)
	assert.Equal(t, Version+"\n", out)
}
