// Package analysis derives flight statistics from trajectory samples.
//
// The functions work on sampled data rather than the closed-form
// solution, so they apply equally to solver output, RK4 integration,
// and stored runs:
//
//   - [Apex], [PathLength]: geometric properties of the sampled path
//   - [Heights], [Speeds]: curve extraction for plotting
//   - [DriftMeter]: relative total-energy drift across samples
//   - [Analyze]: full report comparing sampled against analytic values
//
// Comparing the sampled apex and impact against the analytic ones puts
// a number on discretization error, which is itself a teaching point:
// the closed form is exact, the samples are not.
package analysis
