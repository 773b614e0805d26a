// Package host provides the embedding layer over runtime instances.
//
// A [Host] owns a set of runtimes addressed by opaque IDs and exposes the
// operations a host environment calls: create a runtime, execute a
// snippet on it, read its captured streams, and destroy it. The host
// serializes access to each runtime, so callers on different goroutines
// can share one Host; distinct runtimes still execute in parallel.
//
// # Basic Usage
//
//	h, err := host.New(host.Options{})
//	if err != nil {
//	    return err
//	}
//
//	id, _ := h.Create()
//	status, _ := h.Execute(id, "print!(hello)")
//	out, _ := h.ReadStdout(id) // "hello\n"
//	_ = h.Destroy(id)
//
// # Runtime Addressing
//
// IDs are opaque UUID strings minted by [Host.Create]. Operations on an
// unknown or destroyed ID return [ErrRuntimeNotFound]. [Host.Create]
// returns [ErrHostFull] once [Options.MaxRuntimes] runtimes are live;
// destroying a runtime frees its slot.
package host
