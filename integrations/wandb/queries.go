package wandb

const runsQuery = `query ProjectRuns($entity: String!, $project: String!, $cursor: String, $perPage: Int!) {
  project(name: $project, entityName: $entity) {
    runs(first: $perPage, after: $cursor) {
      edges {
        node {
          id
          name
          config
        }
      }
      pageInfo {
        endCursor
        hasNextPage
      }
    }
  }
}`

const viewerQuery = `query Viewer {
  viewer {
    id
    username
  }
}`
