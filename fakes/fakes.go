package fakes

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

//counterfeiter:generate -o ./fake_interlock_db.go ../db InterlockDB
//counterfeiter:generate -o ./fake_scheduling_lock_db.go ../db SchedulingLockDB
//counterfeiter:generate -o ./fake_job_counter.go ../db JobCounter
//counterfeiter:generate -o ./fake_notification_state_db.go ../db NotificationStateDB
//counterfeiter:generate -o ./fake_enabled_alert_source.go ../db EnabledAlertSource
//counterfeiter:generate -o ./fake_suspension_db.go ../db SuspensionDB
//counterfeiter:generate -o ./fake_infraction_db.go ../db InfractionDB
//counterfeiter:generate -o ./fake_metric_querier.go ../alerting MetricQuerier
//counterfeiter:generate -o ./fake_notifier.go ../alerting Notifier
//counterfeiter:generate -o ./fake_alert_processor.go ../alerting AlertProcessor
//counterfeiter:generate -o ./fake_block_claimer.go ../schedule BlockClaimer
//counterfeiter:generate -o ./fake_due_alert_lister.go ../schedule DueAlertLister
//counterfeiter:generate -o ./fake_database_status.go ../healthendpoint DatabaseStatus
//counterfeiter:generate -o ./fake_scheduler_collector.go ../healthendpoint SchedulerCollector
