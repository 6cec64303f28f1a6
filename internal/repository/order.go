package repository

// newestFirst orders by creation time; id breaks ties for rows created in the same tick.
const newestFirst = "created_at DESC, id DESC"
