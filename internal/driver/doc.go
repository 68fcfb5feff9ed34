// Package driver runs realign over files and directories.
//
// AlignPaths collects sources, loads them into a source.FileSet, aligns them
// in parallel and writes the results back (or reports them in check and
// stdout modes). Per-file failures land in the file's diag.Bag; only
// cancellation and collection errors abort the run.
package driver
