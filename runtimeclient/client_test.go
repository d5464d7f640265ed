package runtimeclient_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"time"

	"code.cloudfoundry.org/lager"
	"github.com/alphagov/paas-runtime-poller/eventio"
	. "github.com/alphagov/paas-runtime-poller/runtimeclient"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/onsi/gomega/gbytes"
	"github.com/onsi/gomega/ghttp"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

func wait(exchange *eventio.Exchange) eventio.Outcome {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	outcome, err := exchange.Wait(ctx)
	Expect(err).ToNot(HaveOccurred())
	return outcome
}

var _ = Describe("Client", func() {
	var (
		server   *ghttp.Server
		registry *prometheus.Registry
		client   *Client
		logger   lager.Logger
		logs     *gbytes.Buffer
	)

	newClient := func(rawURL string) *Client {
		u, err := url.Parse(rawURL)
		Expect(err).ToNot(HaveOccurred())
		c, err := New(Config{
			Scheme:     u.Scheme,
			Authority:  u.Host,
			Logger:     logger,
			Registerer: registry,
		})
		Expect(err).ToNot(HaveOccurred())
		return c
	}

	BeforeEach(func() {
		server = ghttp.NewServer()
		registry = prometheus.NewRegistry()
		logs = gbytes.NewBuffer()
		logger = lager.NewLogger("runtime-client")
		logger.RegisterSink(lager.NewWriterSink(logs, lager.DEBUG))
		client = newClient(server.URL())
	})

	AfterEach(func() {
		server.Close()
	})

	Context("when constructed", func() {
		DescribeTable("should reject invalid configuration",
			func(scheme, authority string) {
				_, err := New(Config{Scheme: scheme, Authority: authority})
				Expect(err).To(HaveOccurred())
			},
			Entry("unknown scheme", "ftp", "example.com"),
			Entry("empty scheme", "", "example.com"),
			Entry("empty authority", "https", ""),
			Entry("authority with path", "https", "example.com/foo"),
			Entry("authority with userinfo", "https", "user@example.com"),
			Entry("authority with query", "https", "example.com?a=b"),
		)

		It("should accept a host and port", func() {
			_, err := New(Config{Scheme: "http", Authority: "127.0.0.1:9001"})
			Expect(err).ToNot(HaveOccurred())
		})
	})

	Context("when resolving targets", func() {
		BeforeEach(func() {
			var err error
			client, err = New(Config{Scheme: "https", Authority: "example.com"})
			Expect(err).ToNot(HaveOccurred())
		})

		It("should replace the scheme and authority and keep the path and query exactly", func() {
			u, err := client.ResolveTarget("/foo?bar=1")
			Expect(err).ToNot(HaveOccurred())
			Expect(u.Scheme).To(Equal("https"))
			Expect(u.Host).To(Equal("example.com"))
			Expect(u.RequestURI()).To(Equal("/foo?bar=1"))
			Expect(u.String()).To(Equal("https://example.com/foo?bar=1"))
		})

		It("should discard the scheme and authority of an absolute target", func() {
			u, err := client.ResolveTarget("http://other.example.net:8080/foo?bar=1")
			Expect(err).ToNot(HaveOccurred())
			Expect(u.String()).To(Equal("https://example.com/foo?bar=1"))
		})

		It("should not normalize escaped paths or queries", func() {
			u, err := client.ResolveTarget("/a%2Fb/./c?x=%20&y")
			Expect(err).ToNot(HaveOccurred())
			Expect(u.RequestURI()).To(Equal("/a%2Fb/./c?x=%20&y"))
		})

		It("should keep a trailing empty query", func() {
			u, err := client.ResolveTarget("/foo?")
			Expect(err).ToNot(HaveOccurred())
			Expect(u.RequestURI()).To(Equal("/foo?"))
		})

		It("should fail for a target without a path", func() {
			_, err := client.ResolveTarget("https://example.org")
			Expect(err).To(HaveOccurred())
		})

		It("should fail for a relative target", func() {
			_, err := client.ResolveTarget("foo")
			Expect(err).To(HaveOccurred())
		})
	})

	Context("when calling the runtime API", func() {
		It("should send the request with only the scheme and authority rewritten", func() {
			server.AppendHandlers(ghttp.CombineHandlers(
				ghttp.VerifyRequest("POST", "/foo", "bar=1"),
				ghttp.VerifyHeaderKV("X-Test", "value"),
				ghttp.VerifyBody([]byte("payload")),
				func(w http.ResponseWriter, r *http.Request) {
					Expect(r.RequestURI).To(Equal("/foo?bar=1"))
				},
				ghttp.RespondWith(http.StatusOK, `{"event":1}`),
			))

			outcome := wait(client.Call(context.Background(), &eventio.Request{
				Method: "POST",
				Target: "https://ignored.example.com/foo?bar=1",
				Header: http.Header{"X-Test": []string{"value"}},
				Body:   []byte("payload"),
			}))

			Expect(outcome.Err).ToNot(HaveOccurred())
			Expect(outcome.Response.StatusCode).To(Equal(http.StatusOK))
			Expect(string(outcome.Response.Body)).To(Equal(`{"event":1}`))
			Expect(server.ReceivedRequests()).To(HaveLen(1))
		})

		It("should return the status, headers and body of a non-success response without an error", func() {
			server.AppendHandlers(ghttp.RespondWith(
				http.StatusInternalServerError,
				"oops",
				http.Header{eventio.RequestIDHeader: []string{"req-1"}},
			))

			outcome := wait(client.Call(context.Background(), &eventio.Request{
				Method: http.MethodGet,
				Target: "/runtime/invocation/next",
			}))

			Expect(outcome.Err).ToNot(HaveOccurred())
			Expect(outcome.Response.StatusCode).To(Equal(http.StatusInternalServerError))
			Expect(outcome.Response.RequestID()).To(Equal("req-1"))
			Expect(string(outcome.Response.Body)).To(Equal("oops"))
		})

		It("should count completed exchanges", func() {
			server.AppendHandlers(
				ghttp.RespondWith(http.StatusOK, "a"),
				ghttp.RespondWith(http.StatusOK, "b"),
			)
			for i := 0; i < 2; i++ {
				wait(client.Call(context.Background(), &eventio.Request{Method: http.MethodGet, Target: "/runtime/invocation/next"}))
			}
			count, err := testutil.GatherAndCount(registry, "runtime_poller_transport_exchange_duration_seconds")
			Expect(err).ToNot(HaveOccurred())
			Expect(count).To(Equal(1))
			Expect(server.ReceivedRequests()).To(HaveLen(2))
		})

		It("should resolve with an error when the connection fails", func() {
			addr := server.Addr()
			server.Close()
			client = newClient("http://" + addr)

			outcome := wait(client.Call(context.Background(), &eventio.Request{
				Method: http.MethodGet,
				Target: "/runtime/invocation/next",
			}))

			Expect(outcome.Response).To(BeNil())
			Expect(outcome.Err).To(MatchError(ContainSubstring("error fetching /runtime/invocation/next")))
			Expect(logs).To(gbytes.Say(`"message":"runtime-client.exchange-failed"`))
		})

		It("should resolve with an error for an invalid target", func() {
			outcome := wait(client.Call(context.Background(), &eventio.Request{
				Method: http.MethodGet,
				Target: "not a path",
			}))
			Expect(outcome.Err).To(HaveOccurred())
			Expect(server.ReceivedRequests()).To(BeEmpty())
		})

		It("should abort the request when the exchange is abandoned", func() {
			received := make(chan struct{})
			aborted := make(chan struct{})
			blocking := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				close(received)
				<-r.Context().Done()
				close(aborted)
			}))
			defer blocking.Close()
			client = newClient(blocking.URL)

			exchange := client.Call(context.Background(), &eventio.Request{
				Method: http.MethodGet,
				Target: "/runtime/invocation/next",
			})
			Eventually(received).Should(BeClosed())
			exchange.Abandon()

			Expect(exchange.Abandoned()).To(BeTrue())
			Eventually(aborted).Should(BeClosed())
			outcome := wait(exchange)
			Expect(outcome.Err).To(MatchError(ContainSubstring("context canceled")))
		})
	})

	Context("when the response is streamed in chunks", func() {
		It("should reassemble the body byte for byte", func() {
			chunked := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				flusher, ok := w.(http.Flusher)
				Expect(ok).To(BeTrue())
				for _, chunk := range []string{"ab", "cd", "ef"} {
					_, err := w.Write([]byte(chunk))
					Expect(err).ToNot(HaveOccurred())
					flusher.Flush()
					time.Sleep(10 * time.Millisecond)
				}
			}))
			defer chunked.Close()
			client = newClient(chunked.URL)

			outcome := wait(client.Call(context.Background(), &eventio.Request{
				Method: http.MethodGet,
				Target: "/runtime/invocation/next",
			}))

			Expect(outcome.Err).ToNot(HaveOccurred())
			Expect(outcome.Response.Body).To(Equal([]byte("abcdef")))
		})
	})
})
