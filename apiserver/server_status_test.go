package apiserver_test

import (
	"context"
	"net/http"
	"net/http/httptest"

	"code.cloudfoundry.org/lager"
	"github.com/alphagov/paas-runtime-poller/eventio"
	"github.com/alphagov/paas-runtime-poller/eventio/eventiofakes"
	"github.com/alphagov/paas-runtime-poller/eventstream"

	. "github.com/alphagov/paas-runtime-poller/apiserver"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Status", func() {

	var (
		ctx        context.Context
		cancel     context.CancelFunc
		cfg        Config
		fakeClient *eventiofakes.FakeEventClient
		stream     *eventstream.EventStream
	)

	BeforeEach(func() {
		ctx, cancel = context.WithCancel(context.Background())
		fakeClient = &eventiofakes.FakeEventClient{}
		stream = eventstream.New(ctx, eventstream.Config{Client: fakeClient})
		cfg = Config{
			Logger: lager.NewLogger("test"),
			Stream: stream,
		}
	})

	AfterEach(func() {
		defer cancel()
	})

	It("should return a json ok true message", func() {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		res := httptest.NewRecorder()

		e := New(cfg)
		e.ServeHTTP(res, req)

		defer e.Shutdown(ctx)

		Expect(res.Body).To(MatchJSON(`{
			"ok": true
		}`))
		Expect(res.Code).To(Equal(200))
		Expect(res.Header().Get("Content-Type")).To(Equal("application/json; charset=UTF-8"))
	})

	It("should report an idle stream before the first pull", func() {
		req := httptest.NewRequest(http.MethodGet, "/status", nil)
		res := httptest.NewRecorder()

		e := New(cfg)
		e.ServeHTTP(res, req)

		Expect(res.Code).To(Equal(200))
		Expect(res.Body).To(MatchJSON(`{
			"state": "idle",
			"issued": 0,
			"yielded": 0
		}`))
	})

	It("should report the exchanges issued and outcomes yielded", func() {
		fakeClient.CallReturnsOnCall(0, eventio.ResolvedExchange(&eventio.Response{StatusCode: 200}, nil))
		fakeClient.CallReturnsOnCall(1, eventio.NewExchange(nil))
		_, ok := stream.TryNext()
		Expect(ok).To(BeTrue())

		req := httptest.NewRequest(http.MethodGet, "/status", nil)
		res := httptest.NewRecorder()

		e := New(cfg)
		e.ServeHTTP(res, req)

		Expect(res.Code).To(Equal(200))
		Expect(res.Body).To(MatchJSON(`{
			"state": "active",
			"issued": 2,
			"yielded": 1
		}`))
	})

	It("should return 503 when there is no stream", func() {
		cfg.Stream = nil
		req := httptest.NewRequest(http.MethodGet, "/status", nil)
		res := httptest.NewRecorder()

		e := New(cfg)
		e.ServeHTTP(res, req)

		Expect(res.Code).To(Equal(http.StatusServiceUnavailable))
		Expect(res.Body).To(MatchJSON(`{"error": "no event stream configured"}`))
	})

	It("should serve prometheus metrics", func() {
		req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
		res := httptest.NewRecorder()

		e := New(cfg)
		e.ServeHTTP(res, req)

		Expect(res.Code).To(Equal(200))
		Expect(res.Body.String()).To(ContainSubstring("# TYPE"))
	})

	It("should return a json error for unknown routes", func() {
		req := httptest.NewRequest(http.MethodGet, "/nope", nil)
		res := httptest.NewRecorder()

		e := New(cfg)
		e.ServeHTTP(res, req)

		Expect(res.Code).To(Equal(http.StatusNotFound))
		Expect(res.Body).To(MatchJSON(`{"error": "Not Found"}`))
	})
})
