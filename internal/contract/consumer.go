package contract

// Consumer is the retrieval side of a timeout queue.
type Consumer[T any] interface {
	Next() (T, bool)
	Len() int
}

// StoppableConsumer is a Consumer whose pending expiry timers can be
// cancelled in one go.
type StoppableConsumer[T any] interface {
	Consumer[T]
	Stop()
}
