// SPDX-License-Identifier: MIT

package cli

import (
	"strconv"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/socnet/analysis"
	"github.com/katalvlaran/socnet/matrix"
)

// matrixCommand prints one of the network matrices.
func (c *CLI) matrixCommand() *cobra.Command {
	var (
		kind      string
		method    string
		metric    string
		variables string
		pivot     float64
	)

	cmd := &cobra.Command{
		Use:   "matrix",
		Short: "Print a network matrix",
		Long: `Print a network matrix. Row and column labels are vertex ids.

Kinds: adjacency, degree, laplacian, cocitation, distances, shortest-paths,
inverse, dissimilarities.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			k, err := analysis.ParseMatrixKind(kind)
			if err != nil {
				return err
			}
			params := analysis.MatrixParams{Method: matrix.MethodLU, PivotTolerance: pivot}
			if method == matrix.MethodGaussJordan.String() {
				params.Method = matrix.MethodGaussJordan
			}
			if params.Metric, err = parseMetric(metric); err != nil {
				return err
			}
			if params.Variables, err = parseVariables(variables); err != nil {
				return err
			}
			s, err := c.open(cmd)
			if err != nil {
				return err
			}
			params.View = s.view

			return c.runMatrix(s, k, params)
		},
	}

	cmd.Flags().StringVarP(&kind, "kind", "k", analysis.AdjacencyMatrix.String(), "matrix kind")
	cmd.Flags().StringVar(&method, "method", matrix.MethodLU.String(), "inversion method: lu, gauss-jordan")
	cmd.Flags().Float64Var(&pivot, "pivot-tolerance", 0, "inverse: pivots at or below this magnitude count as zero (0 = default)")
	cmd.Flags().StringVar(&metric, "metric", matrix.Euclidean.String(), "dissimilarity metric: euclidean, manhattan, hamming, jaccard, chebyshev")
	cmd.Flags().StringVar(&variables, "variables", matrix.Rows.String(), "dissimilarity profile: rows, columns, both")

	return cmd
}

func (c *CLI) runMatrix(s *session, kind analysis.MatrixKind, params analysis.MatrixParams) error {
	m, err := s.net.Matrix(kind, params)
	if err != nil {
		return err
	}
	ids := s.net.Snapshot(params.View).IDs()

	headers := make([]string, 0, len(ids)+1)
	headers = append(headers, "")
	for _, id := range ids {
		headers = append(headers, strconv.Itoa(id))
	}
	rows := make([][]string, m.Rows())
	for i := range rows {
		row := m.RawRow(i)
		rows[i] = make([]string, 0, len(row)+1)
		rows[i] = append(rows[i], strconv.Itoa(ids[i]))
		for _, v := range row {
			rows[i] = append(rows[i], num(v))
		}
	}

	printTitle(c.Out, "%s matrix (%d×%d)", kind, m.Rows(), m.Cols())
	printTable(c.Out, headers, rows)

	return nil
}
