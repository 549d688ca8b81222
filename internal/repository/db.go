package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
)

// txBeginner 抽象连接池的事务起点，便于测试
type txBeginner interface {
	Begin(ctx context.Context) (pgx.Tx, error)
}

// txExecutor 事务执行器实现
type txExecutor struct {
	pool txBeginner
}

// NewTransaction 创建事务执行器
func NewTransaction(pool txBeginner) Transaction {
	return &txExecutor{pool: pool}
}

// ExecTx 在事务中执行函数
//
// fn 返回错误或中途 panic 时回滚，否则提交。
func (e *txExecutor) ExecTx(ctx context.Context, fn func(pgx.Tx) error) (err error) {
	tx, err := e.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}

	defer func() {
		if p := recover(); p != nil {
			_ = tx.Rollback(ctx)
			panic(p)
		}
		if err != nil {
			if rbErr := tx.Rollback(ctx); rbErr != nil && rbErr != pgx.ErrTxClosed {
				err = fmt.Errorf("rollback failed: %v (original error: %w)", rbErr, err)
			}
		}
	}()

	if err = fn(tx); err != nil {
		return err
	}

	if err = tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}

	return nil
}
