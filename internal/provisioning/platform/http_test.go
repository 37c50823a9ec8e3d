package platform

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	apierrors "k8s.io/apimachinery/pkg/api/errors"
	"k8s.io/apimachinery/pkg/apis/meta/v1/unstructured"

	"github.com/imamik/kscaffold/internal/config"
	"github.com/imamik/kscaffold/internal/document"
	"github.com/imamik/kscaffold/internal/platform/openshift"
	"github.com/imamik/kscaffold/internal/provisioning"
)

type apiCall struct {
	Method      string
	Path        string
	ContentType string
	Auth        string
	Body        []byte
}

// fakePlatform answers the platform API: processedtemplates substitutes the
// environment parameter, creations echo the object and patches return the
// deployment. A path listed in conflicts answers 409 AlreadyExists.
type fakePlatform struct {
	server *httptest.Server

	mu        sync.Mutex
	calls     []apiCall
	conflicts map[string]bool
}

func newFakePlatform() *fakePlatform {
	f := &fakePlatform{conflicts: map[string]bool{}}
	f.server = httptest.NewServer(http.HandlerFunc(f.handle))
	return f
}

func (f *fakePlatform) handle(w http.ResponseWriter, r *http.Request) {
	body, _ := io.ReadAll(r.Body)

	f.mu.Lock()
	f.calls = append(f.calls, apiCall{
		Method:      r.Method,
		Path:        r.URL.Path,
		ContentType: r.Header.Get("Content-Type"),
		Auth:        r.Header.Get("Authorization"),
		Body:        body,
	})
	conflict := f.conflicts[r.Method+" "+r.URL.Path]
	f.mu.Unlock()

	w.Header().Set("Content-Type", "application/json")
	switch {
	case conflict:
		w.WriteHeader(http.StatusConflict)
		_, _ = w.Write([]byte(`{"kind":"Status","apiVersion":"v1","status":"Failure","reason":"AlreadyExists","code":409,"message":"already exists"}`))
	case r.Method == http.MethodPatch:
		name := r.URL.Path[strings.LastIndex(r.URL.Path, "/")+1:]
		_, _ = w.Write([]byte(`{"apiVersion":"apps/v1","kind":"Deployment","metadata":{"name":"` + name + `"}}`))
	case strings.HasSuffix(r.URL.Path, "/processedtemplates"):
		var tmpl map[string]any
		if err := json.Unmarshal(body, &tmpl); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		out, err := processLikePlatform(&unstructured.Unstructured{Object: tmpl})
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		w.WriteHeader(http.StatusCreated)
		_ = json.NewEncoder(w).Encode(out.Object)
	default:
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write(body)
	}
}

func (f *fakePlatform) recorded() []apiCall {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]apiCall(nil), f.calls...)
}

func (f *fakePlatform) requests() []string {
	var out []string
	for _, c := range f.recorded() {
		out = append(out, c.Method+" "+c.Path)
	}
	return out
}

var _ = Describe("Provisioner against the platform API", func() {
	var (
		api         *fakePlatform
		provisioner *Provisioner
		pctx        *provisioning.Context
	)

	BeforeEach(func() {
		api = newFakePlatform()
		DeferCleanup(api.server.Close)

		client, err := openshift.NewRealClient(config.PlatformSettings{
			URL:   api.server.URL,
			Token: "secret-token",
		}, 10*time.Second)
		Expect(err).NotTo(HaveOccurred())

		provisioner = NewProvisioner(client)
		pctx = provisioning.NewContext(context.Background())
	})

	provision := func(mutate func(*config.AppSpec)) error {
		spec := testSpec(mutate)
		doc, err := renderDocument(spec)
		Expect(err).NotTo(HaveOccurred())
		return provisioner.Provision(pctx, Request{
			Project:      spec.Namespace,
			AppName:      spec.AppName,
			Environments: spec.Environments,
			Document:     doc,
		})
	}

	Context("with a config map and a secret", func() {
		It("issues the full request sequence for every environment", func() {
			err := provision(func(s *config.AppSpec) {
				s.ConfigMapKeys = []string{"LOG_LEVEL"}
				s.Secrets = []string{"DB_PASSWORD"}
			})
			Expect(err).NotTo(HaveOccurred())

			Expect(api.requests()).To(Equal([]string{
				"POST /apis/template.openshift.io/v1/namespaces/team/templates",
				"POST /apis/template.openshift.io/v1/namespaces/team/processedtemplates",
				"POST /api/v1/namespaces/team/services",
				"POST /apis/apps/v1/namespaces/team/deployments",
				"PATCH /apis/apps/v1/namespaces/team/deployments/demo-int",
				"POST /api/v1/namespaces/team/configmaps",
				"POST /api/v1/namespaces/team/secrets",
				"POST /apis/template.openshift.io/v1/namespaces/team/processedtemplates",
				"POST /api/v1/namespaces/team/services",
				"POST /apis/apps/v1/namespaces/team/deployments",
				"PATCH /apis/apps/v1/namespaces/team/deployments/demo-prd",
				"POST /api/v1/namespaces/team/configmaps",
				"POST /api/v1/namespaces/team/secrets",
			}))
		})

		It("authenticates every request with the bearer token", func() {
			Expect(provision(nil)).To(Succeed())
			for _, c := range api.recorded() {
				Expect(c.Auth).To(Equal("Bearer secret-token"))
			}
		})
	})

	Context("without optional objects", func() {
		It("creates only the service and the deployment", func() {
			Expect(provision(func(s *config.AppSpec) { s.Environments = []string{"int"} })).To(Succeed())

			Expect(api.requests()).To(HaveLen(5))
			Expect(api.requests()).NotTo(ContainElement(ContainSubstring("configmaps")))
			Expect(api.requests()).NotTo(ContainElement(ContainSubstring("secrets")))
		})
	})

	It("creates objects with the environment substituted", func() {
		Expect(provision(func(s *config.AppSpec) { s.Environments = []string{"qas"} })).To(Succeed())

		var service map[string]any
		Expect(json.Unmarshal(api.recorded()[2].Body, &service)).To(Succeed())
		name, _, _ := unstructured.NestedString(service, "metadata", "name")
		Expect(name).To(Equal("demo-qas"))
	})

	It("sends the image trigger as a merge patch", func() {
		Expect(provision(func(s *config.AppSpec) { s.Environments = []string{"int"} })).To(Succeed())

		patch := api.recorded()[4]
		Expect(patch.Method).To(Equal(http.MethodPatch))
		Expect(patch.ContentType).To(Equal("application/merge-patch+json"))

		want, err := document.ImageTriggerPatch("demo", "int")
		Expect(err).NotTo(HaveOccurred())
		Expect(patch.Body).To(MatchJSON(want))
	})

	Context("when a deployment already exists", func() {
		BeforeEach(func() {
			api.conflicts["POST /apis/apps/v1/namespaces/team/deployments"] = true
		})

		It("stops at the failing step and keeps what was created", func() {
			err := provision(nil)
			Expect(err).To(HaveOccurred())
			Expect(apierrors.IsAlreadyExists(err)).To(BeTrue())

			var apiErr *APIError
			Expect(errors.As(err, &apiErr)).To(BeTrue())
			Expect(apiErr.Step).To(Equal(StepDeployment))
			Expect(apiErr.Environment).To(Equal("int"))

			Expect(api.requests()).To(HaveLen(4))
			Expect(pctx.State.Created()).To(HaveLen(2))
		})
	})

	It("makes no request for an invalid document", func() {
		err := provisioner.Provision(pctx, Request{
			Project:      "team",
			AppName:      "demo",
			Environments: []string{"int"},
			Document:     "kind: Template\n",
		})

		var parseErr *document.ParseError
		Expect(errors.As(err, &parseErr)).To(BeTrue())
		Expect(api.recorded()).To(BeEmpty())
	})
})
