package metrics

import (
	"errors"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestObserveRenderIncrementsByView(t *testing.T) {
	before := testutil.ToFloat64(PageRenders.WithLabelValues(ViewDetail))
	ObserveRender(ViewDetail)
	ObserveRender(ViewDetail)

	after := testutil.ToFloat64(PageRenders.WithLabelValues(ViewDetail))
	if after-before != 2 {
		t.Fatalf("expected detail renders to grow by 2, got %v", after-before)
	}
}

func TestObserveReload(t *testing.T) {
	okBefore := testutil.ToFloat64(ContentReloads.WithLabelValues("ok"))
	errBefore := testutil.ToFloat64(ContentReloads.WithLabelValues("error"))

	ObserveReload(7, nil)
	ObserveReload(0, errors.New("boom"))

	if got := testutil.ToFloat64(DocumentsLoaded); got != 7 {
		t.Fatalf("expected gauge to keep last successful count 7, got %v", got)
	}
	if got := testutil.ToFloat64(ContentReloads.WithLabelValues("ok")) - okBefore; got != 1 {
		t.Fatalf("expected one ok reload, got %v", got)
	}
	if got := testutil.ToFloat64(ContentReloads.WithLabelValues("error")) - errBefore; got != 1 {
		t.Fatalf("expected one failed reload, got %v", got)
	}
}

func TestRegisterCollectorsOnFreshRegistries(t *testing.T) {
	for i := 0; i < 2; i++ {
		reg := prometheus.NewRegistry()
		RegisterCollectors(reg)
	}
}
