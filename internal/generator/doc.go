// Package generator provides the file-system primitives the scaffolder is
// built from: operations that can be validated, previewed and executed, and a
// flat placeholder renderer.
//
// # Operations
//
// Every step of a scaffold is an Operation. Execute validates a whole batch
// before touching the disk, then runs it in order:
//
//	ops := []generator.Operation{
//	    &generator.MkdirOp{Path: "site/app"},
//	    &generator.CopyFileOp{Source: bundle, From: "bundle/Gemfile", Path: "site/Gemfile"},
//	}
//	if err := generator.Execute(ctx, ops, generator.ExecuteOptions{Force: true}); err != nil {
//	    return err
//	}
//
// Operations never create the parent of their destination. Running a copy or
// render before the directory it writes into exists is an error.
//
// # Rendering
//
// Templates use <%= key %> placeholders. Substitution is a single pass: a
// substituted value is never scanned again, and unknown keys are left in the
// output untouched.
package generator
