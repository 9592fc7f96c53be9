// Package populate orchestrates a full population run against a target root.
//
// A run executes a fixed sequence of phases: the directory topology is laid
// down first, then documents, images, department shares, system artifacts,
// archives, and finally the deleted-file simulation. Each phase builds its
// own partition set and runs it on its own bounded pool; per-unit failures
// are contained and reported through the run summary rather than aborting
// the run.
//
// # Usage
//
//	p, err := populate.New("/mnt/target", fetch, populate.Options{})
//	if err != nil {
//	    return err
//	}
//	summary, err := p.Run(ctx)
package populate
