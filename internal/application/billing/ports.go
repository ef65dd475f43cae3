package billing

import "context"

// TxRunner ejecuta fn dentro de una transacción. Si fn devuelve error la
// transacción hace rollback; si devuelve nil hace commit. La implementación
// vive en infraestructura (pgx); los casos de uso solo conocen este puerto.
type TxRunner interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}
